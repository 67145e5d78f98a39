package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/adesai/lexguardian/internal/refdata"
	"github.com/adesai/lexguardian/internal/session"
)

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (m *model) buildTabContent() string {
	switch m.state.Tab {
	case session.TabTopics:
		return m.buildTopicsContent()
	case session.TabResources:
		return m.buildResourcesContent()
	default:
		return m.buildExplorerContent()
	}
}

func (m *model) buildExplorerContent() string {
	cb := &contentBuilder{}

	cb.WriteString(sectionHeaderStyle.Render("🌍 Select Your Country"))
	cb.WriteRune('\n')
	for idx, country := range refdata.Countries() {
		line := fmt.Sprintf("%s %s %s", selectionMarker(country == m.state.Country), country.Flag, country.Name)
		if m.focus == focusCountries && idx == m.countryCursor {
			line = currentLineStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		cb.WriteString(line)
		cb.WriteRune('\n')
	}
	cb.WriteRune('\n')

	cb.WriteString(sectionHeaderStyle.Render("🎓 Student Scenarios"))
	cb.WriteRune('\n')
	for idx, scenario := range refdata.Scenarios() {
		line := fmt.Sprintf("%s %s", selectionMarker(scenario == m.state.Scenario), scenario)
		if m.focus == focusScenarios && idx == m.scenarioCursor {
			line = currentLineStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		cb.WriteString(line)
		cb.WriteRune('\n')
	}
	cb.WriteRune('\n')

	cb.WriteString(helperStyle.Render("Describe your specific concern (press / to type):"))
	cb.WriteRune('\n')
	cb.WriteString(m.composer.View())
	cb.WriteRune('\n')
	cb.WriteRune('\n')

	m.writeResponsePanel(cb)
	cb.WriteRune('\n')
	m.writeAwarenessMeter(cb)

	return cb.String()
}

func (m *model) writeResponsePanel(cb *contentBuilder) {
	cb.WriteString(sectionHeaderStyle.Render("⚖️ Know Your Rights"))
	cb.WriteRune('\n')
	switch {
	case m.loading:
		cb.WriteString(helperStyle.Render(fmt.Sprintf("%s Analyzing student rights for %q…", m.spinner.View(), m.state.Scenario)))
		cb.WriteRune('\n')
	case m.errorMessage != "":
		cb.WriteString(helperStyle.Render("Could not fetch guidance. Pick another scenario to retry."))
		cb.WriteRune('\n')
	case m.state.Scenario == "":
		cb.WriteString(helperStyle.Render("👆 Select a student scenario to see your rights information."))
		cb.WriteRune('\n')
	case m.rendered != "":
		cb.WriteString(responseBoxStyle.Render(m.rendered))
		cb.WriteRune('\n')
	case m.seq != nil:
		cb.WriteString(responseBoxStyle.Render(wordwrap.String(m.seq.Frame(), m.wrapWidth(8))))
		cb.WriteRune('\n')
	default:
		cb.WriteString(helperStyle.Render("Preparing the rights query…"))
		cb.WriteRune('\n')
	}
}

func (m *model) writeAwarenessMeter(cb *contentBuilder) {
	cb.WriteString(sectionHeaderStyle.Render("📊 Student Rights Awareness"))
	cb.WriteRune('\n')
	cb.WriteString(helperStyle.Render("Simulated awareness levels by country."))
	cb.WriteRune('\n')
	for _, stat := range refdata.AwarenessStats() {
		name := refdata.CountryName(stat.Code)
		bar := meterFillStyle.Render(strings.Repeat("█", stat.Percent/5))
		cb.WriteString(fmt.Sprintf("%-16s %3d%% %s", name, stat.Percent, bar))
		cb.WriteRune('\n')
	}
}

func (m *model) buildTopicsContent() string {
	cb := &contentBuilder{}

	cb.WriteString(sectionHeaderStyle.Render("📚 Essential Legal Topics for Students"))
	cb.WriteRune('\n')
	cb.WriteString(helperStyle.Render("Press enter to explore a topic in the Rights Explorer."))
	cb.WriteRune('\n')
	for idx, topic := range refdata.Topics() {
		line := "  " + topic
		if idx == m.topicCursor {
			line = currentLineStyle.Render("▸ " + topic)
		}
		cb.WriteString(line)
		cb.WriteRune('\n')
	}
	cb.WriteRune('\n')

	m.writeQuiz(cb)
	return cb.String()
}

func (m *model) writeQuiz(cb *contentBuilder) {
	quiz := refdata.Quiz()
	if len(quiz) == 0 {
		return
	}
	question := quiz[m.quizIdx]

	cb.WriteString(sectionHeaderStyle.Render("🧠 Legal Knowledge Quiz"))
	cb.WriteRune('\n')
	cb.WriteString(fmt.Sprintf("Question %d of %d: %s", m.quizIdx+1, len(quiz), question.Prompt))
	cb.WriteRune('\n')
	for idx, option := range question.Options {
		line := fmt.Sprintf("  %d) %s", idx+1, option)
		if idx == m.quizPicked {
			line = currentLineStyle.Render(line)
		}
		cb.WriteString(line)
		cb.WriteRune('\n')
	}
	switch {
	case m.quizPicked == quizUnanswered:
		cb.WriteString(helperStyle.Render("Answer with 1-4; n shows the next question."))
	case m.quizPicked == question.Answer:
		cb.WriteString(successStyle.Render("Correct! " + question.Explanation))
	default:
		cb.WriteString(errorStyle.Render(fmt.Sprintf("Incorrect. The correct answer is %d) %s — %s",
			question.Answer+1, question.Options[question.Answer], question.Explanation)))
	}
	cb.WriteRune('\n')
}

func (m *model) buildResourcesContent() string {
	cb := &contentBuilder{}
	wrap := m.wrapWidth(6)

	cb.WriteString(sectionHeaderStyle.Render("🛡️ Student Legal Resources"))
	cb.WriteRune('\n')
	for _, resource := range refdata.Resources() {
		cb.WriteString(fmt.Sprintf("%s %s", resource.Icon, selectedItemStyle.Render(resource.Title)))
		cb.WriteRune('\n')
		cb.WriteString(indentMultiline(wordwrap.String(resource.Description, wrap), "   "))
		cb.WriteRune('\n')
	}
	cb.WriteRune('\n')

	cb.WriteString(sectionHeaderStyle.Render("📞 Emergency Contacts"))
	cb.WriteRune('\n')
	for _, contact := range refdata.Contacts() {
		cb.WriteString(selectedItemStyle.Render(contact.Title))
		cb.WriteRune('\n')
		for _, line := range contact.Lines {
			cb.WriteString("   " + line)
			cb.WriteRune('\n')
		}
	}
	cb.WriteRune('\n')
	cb.WriteString(helperStyle.Render("For educational purposes only • Not legal advice."))
	cb.WriteRune('\n')

	return cb.String()
}

func selectionMarker(selected bool) string {
	if selected {
		return selectedItemStyle.Render("✓")
	}
	return " "
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}
