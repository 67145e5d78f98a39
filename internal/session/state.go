// Package session holds one user's selection state and the lazy rights-query
// pipeline attached to it. State transitions are pure functions so the
// presentation layer can stay a thin dispatcher.
package session

import (
	"strings"

	"github.com/adesai/lexguardian/internal/refdata"
)

// Tab identifies one of the dashboard surfaces.
type Tab int

const (
	TabExplorer Tab = iota
	TabTopics
	TabResources
)

func (t Tab) String() string {
	switch t {
	case TabExplorer:
		return "Rights Explorer"
	case TabTopics:
		return "Legal Topics"
	case TabResources:
		return "Student Resources"
	default:
		return "unknown"
	}
}

// State is the full selection state: the chosen country, the active scenario
// (empty when unset), and the visible tab.
type State struct {
	Country  refdata.Country
	Scenario string
	Tab      Tab
}

// Initial returns the first-load state: first reference country, no
// scenario, Explorer tab.
func Initial() State {
	return State{
		Country:  refdata.Countries()[0],
		Scenario: "",
		Tab:      TabExplorer,
	}
}

// Event is a discrete UI action applied to the state.
type Event interface {
	isEvent()
}

// SelectCountry switches jurisdictions. It always clears the scenario so a
// stale answer can never be shown against the wrong country.
type SelectCountry struct {
	Country refdata.Country
}

// SelectPresetScenario picks one of the fixed scenario labels.
type SelectPresetScenario struct {
	Label string
}

// EnterFreeText supplies a user-written scenario. Blank text is a no-op.
// Precedence rule: the shell applies free text after any preset click in the
// same interaction cycle, so non-empty free text always wins.
type EnterFreeText struct {
	Text string
}

// SelectTopic explores a legal topic: it jumps to the Explorer tab with the
// topic as the scenario.
type SelectTopic struct {
	Topic string
}

// SwitchTab changes the visible surface without touching the selection.
type SwitchTab struct {
	Tab Tab
}

func (SelectCountry) isEvent()        {}
func (SelectPresetScenario) isEvent() {}
func (EnterFreeText) isEvent()        {}
func (SelectTopic) isEvent()          {}
func (SwitchTab) isEvent()            {}

// Apply returns the state after one event. Last write wins per field.
func Apply(state State, event Event) State {
	switch ev := event.(type) {
	case SelectCountry:
		state.Country = ev.Country
		state.Scenario = ""
	case SelectPresetScenario:
		state.Scenario = ev.Label
	case EnterFreeText:
		if text := strings.TrimSpace(ev.Text); text != "" {
			state.Scenario = text
		}
	case SelectTopic:
		state.Tab = TabExplorer
		state.Scenario = ev.Topic
	case SwitchTab:
		state.Tab = ev.Tab
	}
	return state
}
