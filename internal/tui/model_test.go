package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adesai/lexguardian/internal/llm"
	"github.com/adesai/lexguardian/internal/refdata"
	"github.com/adesai/lexguardian/internal/session"
)

type fakeLLM struct {
	text string
	err  error
}

func (f fakeLLM) FetchRights(ctx context.Context, countryCode, scenario, modelID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.text == "" {
		return "You have rights.", nil
	}
	return f.text, nil
}

func (f fakeLLM) Name() string { return "fake" }

func newTestModel(t *testing.T) *model {
	t.Helper()
	teaModel, ok := New(Config{LLM: fakeLLM{}}).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	return teaModel
}

func outcomeFor(m *model, text string, err error) session.Outcome {
	return session.Outcome{
		Country:  m.state.Country,
		Scenario: m.state.Scenario,
		ModelID:  m.sess.Model(),
		Text:     text,
		Err:      err,
	}
}

func TestPresetScenarioTriggersQuery(t *testing.T) {
	m := newTestModel(t)
	m.focus = focusScenarios
	m.scenarioCursor = 1

	cmd := m.selectUnderCursor()
	if cmd == nil {
		t.Fatal("scenario selection should start a rights query")
	}
	if !m.loading {
		t.Fatal("query should mark loading state")
	}
	if m.state.Scenario != refdata.Scenarios()[1] {
		t.Fatalf("scenario not applied: %q", m.state.Scenario)
	}
}

func TestCountrySelectionClearsScenario(t *testing.T) {
	m := newTestModel(t)
	m.applyEvent(session.SelectPresetScenario{Label: "Campus Housing Issues"})
	m.loading = false
	m.handleRightsResult(rightsResultMsg{seq: m.querySeq, outcome: outcomeFor(m, "guidance", nil)})

	m.focus = focusCountries
	m.countryCursor = 3
	m.selectUnderCursor()

	if m.state.Scenario != "" {
		t.Fatalf("country switch should clear scenario, got %q", m.state.Scenario)
	}
	if m.outcome != nil || m.seq != nil {
		t.Fatal("country switch should drop the pending response")
	}
}

func TestRightsResultStartsReveal(t *testing.T) {
	m := newTestModel(t)
	cmd := m.applyEvent(session.SelectPresetScenario{Label: "Student Privacy Rights"})
	if cmd == nil {
		t.Fatal("expected a query command")
	}

	if cmd := m.handleRightsResult(rightsResultMsg{seq: m.querySeq, outcome: outcomeFor(m, "one two three", nil)}); cmd == nil {
		t.Fatal("successful result should schedule the first reveal tick")
	}
	if m.seq == nil || m.seq.Done() {
		t.Fatal("reveal sequence should be in progress")
	}

	for !m.seq.Done() {
		m.handleRevealTick(revealTickMsg{seq: m.querySeq})
	}
	if m.rendered == "" {
		t.Fatal("completed reveal should render the final answer")
	}
}

func TestStaleRightsResultIsDropped(t *testing.T) {
	m := newTestModel(t)
	m.applyEvent(session.SelectPresetScenario{Label: "Campus Housing Issues"})
	staleSeq := m.querySeq
	stale := outcomeFor(m, "stale answer", nil)

	// A newer selection supersedes the in-flight query.
	m.loading = false
	m.applyEvent(session.SelectPresetScenario{Label: "Student Loan Concerns"})

	if cmd := m.handleRightsResult(rightsResultMsg{seq: staleSeq, outcome: stale}); cmd != nil {
		t.Fatal("stale result must not schedule anything")
	}
	if m.seq != nil {
		t.Fatal("stale result must not start a reveal")
	}
}

func TestSupersededSelectionRequeries(t *testing.T) {
	m := newTestModel(t)
	m.applyEvent(session.SelectPresetScenario{Label: "Campus Housing Issues"})
	seq := m.querySeq
	inflight := outcomeFor(m, "old answer", nil)

	// Scenario changes while the query is in flight; loading blocks a new job.
	m.state = m.sess.Apply(session.SelectPresetScenario{Label: "Student Loan Concerns"})

	cmd := m.handleRightsResult(rightsResultMsg{seq: seq, outcome: inflight})
	if cmd == nil {
		t.Fatal("mismatched outcome should trigger a fresh query")
	}
	if !m.loading {
		t.Fatal("fresh query should mark loading again")
	}
	if m.seq != nil {
		t.Fatal("mismatched outcome must not be revealed")
	}
}

func TestQueryErrorIsSurfaced(t *testing.T) {
	m := newTestModel(t)
	m.applyEvent(session.SelectPresetScenario{Label: "Disciplinary Proceedings"})

	queryErr := &llm.QueryError{Reason: "the rights service rejected the API key"}
	m.handleRightsResult(rightsResultMsg{seq: m.querySeq, outcome: outcomeFor(m, "", queryErr)})

	if m.seq != nil || m.rendered != "" {
		t.Fatal("failed query must not render partial text")
	}
	if !strings.Contains(m.View(), "rejected the API key") {
		t.Fatal("error message should be visible in the view")
	}
}

func TestComposerSubmitOverridesPreset(t *testing.T) {
	m := newTestModel(t)
	m.applyEvent(session.SelectPresetScenario{Label: "Campus Housing Issues"})
	m.loading = false

	m.focus = focusComposer
	m.composer.Focus()
	m.composer.SetValue("Rights during campus protest")
	if _, cmd := m.handleComposerKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("composer submit should trigger a query")
	}

	if m.state.Scenario != "Rights during campus protest" {
		t.Fatalf("free text should win, got %q", m.state.Scenario)
	}
	if m.composer.Focused() {
		t.Fatal("composer should blur after submit")
	}
	if got := strings.TrimSpace(m.composer.Value()); got != "" {
		t.Fatalf("composer should clear after submit, got %q", got)
	}
}

func TestEmptyComposerSubmitIsNoOp(t *testing.T) {
	m := newTestModel(t)
	m.applyEvent(session.SelectPresetScenario{Label: "Campus Housing Issues"})

	m.focus = focusComposer
	m.composer.Focus()
	m.composer.SetValue("   ")
	if _, cmd := m.handleComposerKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("blank free text must not trigger a query")
	}
	if m.state.Scenario != "Campus Housing Issues" {
		t.Fatalf("blank free text changed the scenario: %q", m.state.Scenario)
	}
}

func TestComposerEscClearsAndBlurs(t *testing.T) {
	m := newTestModel(t)
	m.focus = focusComposer
	m.composer.Focus()
	m.composer.SetValue("half-typed concern")

	m.handleComposerKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.composer.Focused() {
		t.Fatal("esc should blur the composer")
	}
	if got := strings.TrimSpace(m.composer.Value()); got != "" {
		t.Fatalf("esc should clear the composer, got %q", got)
	}
}

func TestTopicExploreJumpsToExplorer(t *testing.T) {
	m := newTestModel(t)
	m.switchTab(1)
	if m.state.Tab != session.TabTopics {
		t.Fatalf("expected Topics tab, got %v", m.state.Tab)
	}

	m.topicCursor = 8
	if cmd := m.handleTopicsKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("topic explore should trigger a query")
	}
	if m.state.Tab != session.TabExplorer {
		t.Fatalf("topic explore should land on Explorer, got %v", m.state.Tab)
	}
	if m.state.Scenario != refdata.Topics()[8] {
		t.Fatalf("topic not applied as scenario: %q", m.state.Scenario)
	}
}

func TestModelCycleForcesRequery(t *testing.T) {
	m := newTestModel(t)
	m.applyEvent(session.SelectPresetScenario{Label: "Student Privacy Rights"})
	m.handleRightsResult(rightsResultMsg{seq: m.querySeq, outcome: outcomeFor(m, "guidance", nil)})

	if cmd := m.cycleModel(); cmd == nil {
		t.Fatal("model switch should re-query the selected scenario")
	}
	if m.modelIdx != 1 {
		t.Fatalf("model index should advance, got %d", m.modelIdx)
	}
	if m.sess.Model() != refdata.Models()[1].ID {
		t.Fatalf("session model not updated: %q", m.sess.Model())
	}
}

func TestQuizGrading(t *testing.T) {
	m := newTestModel(t)
	m.switchTab(1)

	correct := refdata.Quiz()[0].Answer
	m.answerQuiz(correct)
	if view := m.buildTopicsContent(); !strings.Contains(view, "Correct!") {
		t.Fatal("correct answer should be acknowledged")
	}

	m.nextQuizQuestion()
	if m.quizPicked != quizUnanswered {
		t.Fatal("next question should reset the picked answer")
	}
	wrong := (refdata.Quiz()[m.quizIdx].Answer + 1) % len(refdata.Quiz()[m.quizIdx].Options)
	m.answerQuiz(wrong)
	if view := m.buildTopicsContent(); !strings.Contains(view, "Incorrect") {
		t.Fatal("wrong answer should be flagged")
	}
}

func TestIdleExplorerNudgesForScenario(t *testing.T) {
	m := newTestModel(t)
	if view := m.buildExplorerContent(); !strings.Contains(view, "Select a student scenario") {
		t.Fatal("idle explorer should nudge the user toward a scenario")
	}
}

func TestTabSwitchingWrapsAround(t *testing.T) {
	m := newTestModel(t)
	m.switchTab(1)
	m.switchTab(1)
	if m.state.Tab != session.TabResources {
		t.Fatalf("expected Resources, got %v", m.state.Tab)
	}
	m.switchTab(1)
	if m.state.Tab != session.TabExplorer {
		t.Fatalf("expected wrap to Explorer, got %v", m.state.Tab)
	}
	m.switchTab(-1)
	if m.state.Tab != session.TabResources {
		t.Fatalf("expected reverse wrap to Resources, got %v", m.state.Tab)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	if strings.Contains(m.View(), "Keys") {
		t.Fatal("help should be hidden by default")
	}
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !strings.Contains(m.View(), "Keys") {
		t.Fatal("help should appear after toggling")
	}
}
