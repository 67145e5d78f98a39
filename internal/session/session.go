package session

import (
	"context"
	"strings"
	"sync"

	"github.com/adesai/lexguardian/internal/llm"
	"github.com/adesai/lexguardian/internal/refdata"
)

// Outcome is the transient result of one rights query, tagged with the
// selection it was computed for.
type Outcome struct {
	Country  refdata.Country
	Scenario string
	ModelID  string
	Text     string
	Err      error
}

// Session owns one user's SelectionState and memoizes the query outcome for
// the current (country, scenario, model) triple. Safe for the UI loop and a
// background query goroutine to share.
type Session struct {
	mu      sync.Mutex
	state   State
	modelID string
	client  llm.Client
	outcome *Outcome
}

// New creates a session at the initial selection state.
func New(client llm.Client, modelID string) *Session {
	return &Session{
		state:   Initial(),
		modelID: modelID,
		client:  client,
	}
}

// Apply dispatches one event and returns the resulting state. Any change to
// the selection triple drops the memoized outcome.
func (s *Session) Apply(event Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := Apply(s.state, event)
	if next.Country != s.state.Country || next.Scenario != s.state.Scenario {
		s.outcome = nil
	}
	s.state = next
	return s.state
}

// SelectCountry is the shell entry point keyed by ISO code. Codes outside
// the reference table still select a synthetic country with a resolved name.
func (s *Session) SelectCountry(code string) State {
	country, ok := refdata.CountryByCode(code)
	if !ok {
		code = strings.ToUpper(strings.TrimSpace(code))
		country = refdata.Country{Name: refdata.CountryName(code), Code: code}
	}
	return s.Apply(SelectCountry{Country: country})
}

// SelectScenario is the shell entry point for any scenario text, preset or
// free-form. Blank input leaves the state untouched.
func (s *Session) SelectScenario(text string) State {
	return s.Apply(EnterFreeText{Text: text})
}

// SetModel switches the backend model. The memoized outcome is dropped so
// the next render re-queries with the new model.
func (s *Session) SetModel(modelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if modelID == s.modelID {
		return
	}
	s.modelID = modelID
	s.outcome = nil
}

// Model returns the active backend model id.
func (s *Session) Model() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modelID
}

// Snapshot returns the current selection state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentOutcome lazily runs the rights query for the current selection.
// The second return value is false when no scenario is selected. The query
// runs without holding the session lock; its result is memoized only if the
// selection triple is still current when it completes, so an answer for an
// abandoned selection is returned once but never cached.
func (s *Session) CurrentOutcome(ctx context.Context) (Outcome, bool) {
	s.mu.Lock()
	if s.state.Scenario == "" {
		s.mu.Unlock()
		return Outcome{}, false
	}
	if s.outcome != nil && s.outcomeMatchesLocked() {
		out := *s.outcome
		s.mu.Unlock()
		return out, true
	}
	country := s.state.Country
	scenario := s.state.Scenario
	modelID := s.modelID
	s.mu.Unlock()

	text, err := s.client.FetchRights(ctx, country.Code, scenario, modelID)
	out := Outcome{
		Country:  country,
		Scenario: scenario,
		ModelID:  modelID,
		Text:     text,
		Err:      err,
	}

	s.mu.Lock()
	if s.state.Country == country && s.state.Scenario == scenario && s.modelID == modelID {
		stored := out
		s.outcome = &stored
	}
	s.mu.Unlock()
	return out, true
}

func (s *Session) outcomeMatchesLocked() bool {
	return s.outcome.Country == s.state.Country &&
		s.outcome.Scenario == s.state.Scenario &&
		s.outcome.ModelID == s.modelID
}
