package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adesai/lexguardian/internal/refdata"
	"github.com/adesai/lexguardian/internal/session"
)

func (m *model) View() string {
	m.refreshViewportIfDirty()
	parts := []string{
		m.heroView(),
		m.tabBarView(),
		m.viewport.View(),
	}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		message := m.infoMessage
		if m.loading {
			message = fmt.Sprintf("%s %s", m.spinner.View(), message)
		}
		parts = append(parts, helperStyle.Render(message))
	}
	if m.helpVisible {
		parts = append(parts, m.helpView())
	}
	parts = append(parts, m.statusBarView())
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(heroTitle),
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) tabBarView() string {
	tabs := []session.Tab{session.TabExplorer, session.TabTopics, session.TabResources}
	cells := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := tab.String()
		if tab == m.state.Tab {
			cells = append(cells, tabActiveStyle.Render(label))
		} else {
			cells = append(cells, tabInactiveStyle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return lipgloss.JoinHorizontal(lipgloss.Top, bar, helperStyle.Render("  tab/shift+tab switches"))
}

func (m *model) statusBarView() string {
	scenario := m.state.Scenario
	if scenario == "" {
		scenario = "no scenario"
	}
	stats := []string{
		fmt.Sprintf("%s %s", m.state.Country.Flag, m.state.Country.Name),
		scenario,
		refdata.Models()[m.modelIdx].Label,
	}
	if m.config.LLM != nil {
		stats = append(stats, m.config.LLM.Name())
	}
	if badge := m.jobBadge(); badge != "" {
		stats = append(stats, badge)
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) jobBadge() string {
	if m.lastJob.ID == "" {
		return ""
	}
	switch m.lastJob.Status {
	case jobStatusRunning:
		return fmt.Sprintf("%s running", m.lastJob.Kind)
	case jobStatusFailed:
		return fmt.Sprintf("%s failed", m.lastJob.Kind)
	default:
		return fmt.Sprintf("%s %s", m.lastJob.Kind, m.lastJob.Duration.Round(timeBadgeUnit))
	}
}

func (m *model) helpView() string {
	lines := []string{
		sectionHeaderStyle.Render("Keys"),
		helperStyle.Render("• tab / shift+tab cycle the three surfaces."),
		helperStyle.Render("• ←/→ pick the country or scenario column, ↑/↓ move, enter selects."),
		helperStyle.Render("• / opens the free-text composer; enter submits, esc cancels."),
		helperStyle.Render("• m cycles the AI model; on Legal Topics, 1-4 answer the quiz and n advances."),
		helperStyle.Render("• pgup/pgdn scroll, ? toggles this box, q or ctrl+c quits."),
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
