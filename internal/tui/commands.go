package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adesai/lexguardian/internal/reveal"
	"github.com/adesai/lexguardian/internal/session"
)

func rightsQueryJob(sess *session.Session, seq int) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, 35*time.Second)
		defer cancel()
		outcome, ok := sess.CurrentOutcome(ctx)
		if !ok {
			// Scenario was cleared before the job ran.
			return rightsResultMsg{seq: seq}, nil
		}
		return rightsResultMsg{seq: seq, outcome: outcome}, outcome.Err
	}
}

func revealTickCmd(seq int) tea.Cmd {
	return tea.Tick(reveal.Interval, func(time.Time) tea.Msg {
		return revealTickMsg{seq: seq}
	})
}
