package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/adesai/lexguardian/internal/llm"
	"github.com/adesai/lexguardian/internal/refdata"
	"github.com/adesai/lexguardian/internal/reveal"
	"github.com/adesai/lexguardian/internal/session"
)

// Config wires runtime options into the TUI program.
type Config struct {
	LLM     llm.Client
	ModelID string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	composer := textinput.New()
	composer.Placeholder = composerPlaceholder
	composer.CharLimit = 200
	composer.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	modelIdx := 0
	for i, choice := range refdata.Models() {
		if choice.ID == config.ModelID {
			modelIdx = i
		}
	}
	sess := session.New(config.LLM, refdata.Models()[modelIdx].ID)

	return &model{
		config:        config,
		sess:          sess,
		state:         sess.Snapshot(),
		composer:      composer,
		spinner:       spin,
		viewport:      vp,
		bus:           newJobBus(),
		focus:         focusCountries,
		modelIdx:      modelIdx,
		quizPicked:    quizUnanswered,
		viewportDirty: true,
		infoMessage:   "Select a country, then pick a scenario to see your rights.",
	}
}

type model struct {
	config Config
	sess   *session.Session
	state  session.State

	composer textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	bus      *jobBus

	focus          focusArea
	countryCursor  int
	scenarioCursor int
	topicCursor    int
	modelIdx       int

	querySeq int
	loading  bool
	outcome  *session.Outcome
	seq      *reveal.Sequence
	rendered string

	quizIdx    int
	quizPicked int

	infoMessage   string
	errorMessage  string
	helpVisible   bool
	viewportDirty bool
	lastJob       jobSnapshot
}

type rightsResultMsg struct {
	seq     int
	outcome session.Outcome
}

type revealTickMsg struct {
	seq int
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.markViewportDirty()
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus == focusComposer {
			return m.handleComposerKey(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		newWidth := msg.Width - viewportHorizontalPadding
		if newWidth < minViewportWidth {
			newWidth = minViewportWidth
		}
		m.viewport.Width = newWidth
		height := msg.Height - 7
		if height < 5 {
			height = 5
		}
		m.viewport.Height = height
		m.markViewportDirty()
		return m, nil
	case jobSignalMsg:
		m.lastJob = msg.Snapshot
		return m, nil
	case jobResultEnvelope:
		m.lastJob = msg.Snapshot
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case rightsResultMsg:
		return m, m.handleRightsResult(msg)
	case revealTickMsg:
		return m, m.handleRevealTick(msg)
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "tab":
		return m, m.switchTab(1)
	case "shift+tab":
		return m, m.switchTab(-1)
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "q", "esc":
		return m, tea.Quit
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(key)
		return m, cmd
	}

	switch m.state.Tab {
	case session.TabExplorer:
		return m, m.handleExplorerKey(key)
	case session.TabTopics:
		return m, m.handleTopicsKey(key)
	default:
		return m, nil
	}
}

func (m *model) switchTab(delta int) tea.Cmd {
	tabs := []session.Tab{session.TabExplorer, session.TabTopics, session.TabResources}
	next := (int(m.state.Tab) + delta + len(tabs)) % len(tabs)
	return m.applyEvent(session.SwitchTab{Tab: tabs[next]})
}

func (m *model) handleExplorerKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "left", "h":
		m.focus = focusCountries
		m.markViewportDirty()
	case "right", "l":
		m.focus = focusScenarios
		m.markViewportDirty()
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter":
		return m.selectUnderCursor()
	case "m":
		return m.cycleModel()
	case "/", "c":
		m.focus = focusComposer
		m.composer.Focus()
		m.infoMessage = "Describe your specific concern, then press enter."
		m.markViewportDirty()
		return textinput.Blink
	}
	return nil
}

func (m *model) moveCursor(delta int) {
	switch m.focus {
	case focusCountries:
		m.countryCursor = clampCursor(m.countryCursor+delta, len(refdata.Countries()))
	case focusScenarios:
		m.scenarioCursor = clampCursor(m.scenarioCursor+delta, len(refdata.Scenarios()))
	}
	m.markViewportDirty()
}

func (m *model) selectUnderCursor() tea.Cmd {
	switch m.focus {
	case focusCountries:
		country := refdata.Countries()[m.countryCursor]
		return m.applyEvent(session.SelectCountry{Country: country})
	case focusScenarios:
		label := refdata.Scenarios()[m.scenarioCursor]
		return m.applyEvent(session.SelectPresetScenario{Label: label})
	}
	return nil
}

func (m *model) cycleModel() tea.Cmd {
	m.modelIdx = (m.modelIdx + 1) % len(refdata.Models())
	choice := refdata.Models()[m.modelIdx]
	m.sess.SetModel(choice.ID)
	m.infoMessage = fmt.Sprintf("Model switched to %s.", choice.Label)
	m.markViewportDirty()
	return m.maybeQueryCmd()
}

func (m *model) handleTopicsKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up", "k":
		m.topicCursor = clampCursor(m.topicCursor-1, len(refdata.Topics()))
		m.markViewportDirty()
	case "down", "j":
		m.topicCursor = clampCursor(m.topicCursor+1, len(refdata.Topics()))
		m.markViewportDirty()
	case "enter":
		topic := refdata.Topics()[m.topicCursor]
		return m.applyEvent(session.SelectTopic{Topic: topic})
	case "1", "2", "3", "4":
		m.answerQuiz(int(key.String()[0] - '1'))
	case "n":
		m.nextQuizQuestion()
	}
	return nil
}

func (m *model) handleComposerKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.composer.SetValue("")
		m.composer.Blur()
		m.focus = focusScenarios
		m.infoMessage = "Composer cleared."
		m.markViewportDirty()
		return m, nil
	case tea.KeyEnter:
		text := strings.TrimSpace(m.composer.Value())
		if text == "" {
			m.infoMessage = "Describe your concern first, or press esc to cancel."
			return m, nil
		}
		m.composer.SetValue("")
		m.composer.Blur()
		m.focus = focusScenarios
		return m, m.applyEvent(session.EnterFreeText{Text: text})
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(key)
	m.markViewportDirty()
	return m, cmd
}

func (m *model) answerQuiz(option int) {
	quiz := refdata.Quiz()
	if m.quizIdx >= len(quiz) || m.quizPicked != quizUnanswered {
		return
	}
	if option < 0 || option >= len(quiz[m.quizIdx].Options) {
		return
	}
	m.quizPicked = option
	m.markViewportDirty()
}

func (m *model) nextQuizQuestion() {
	m.quizIdx = (m.quizIdx + 1) % len(refdata.Quiz())
	m.quizPicked = quizUnanswered
	m.markViewportDirty()
}

// applyEvent dispatches a selection event and lazily triggers the rights
// query the new state calls for.
func (m *model) applyEvent(event session.Event) tea.Cmd {
	m.state = m.sess.Apply(event)
	m.markViewportDirty()
	return m.maybeQueryCmd()
}

func (m *model) maybeQueryCmd() tea.Cmd {
	if m.state.Scenario == "" {
		m.outcome = nil
		m.seq = nil
		m.rendered = ""
		m.errorMessage = ""
		return nil
	}
	if m.loading {
		return nil
	}
	if m.outcome != nil && m.outcomeMatchesSelection() {
		return nil
	}
	m.querySeq++
	m.loading = true
	m.errorMessage = ""
	m.seq = nil
	m.rendered = ""
	m.infoMessage = fmt.Sprintf("Analyzing student rights for %q…", m.state.Scenario)
	m.markViewportDirty()
	return tea.Batch(m.spinner.Tick, m.bus.Start(jobKindRights, rightsQueryJob(m.sess, m.querySeq)))
}

func (m *model) outcomeMatchesSelection() bool {
	return m.outcome.Country == m.state.Country &&
		m.outcome.Scenario == m.state.Scenario &&
		m.outcome.ModelID == m.sess.Model()
}

func (m *model) handleRightsResult(msg rightsResultMsg) tea.Cmd {
	if msg.seq != m.querySeq {
		// A newer query superseded this one; drop the result.
		return nil
	}
	m.loading = false
	m.markViewportDirty()
	if msg.outcome.Country != m.state.Country || msg.outcome.Scenario != m.state.Scenario {
		// The selection moved on while the call was in flight.
		return m.maybeQueryCmd()
	}
	out := msg.outcome
	m.outcome = &out
	if out.Err != nil {
		m.errorMessage = out.Err.Error()
		m.infoMessage = "The session stays usable; pick another scenario to retry."
		return nil
	}
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Rights guidance ready for %s.", out.Country.Name)
	m.seq = reveal.New(out.Text)
	return revealTickCmd(m.querySeq)
}

func (m *model) handleRevealTick(msg revealTickMsg) tea.Cmd {
	if msg.seq != m.querySeq || m.seq == nil || m.seq.Done() {
		return nil
	}
	m.seq.Advance()
	m.markViewportDirty()
	if !m.seq.Done() {
		return revealTickCmd(m.querySeq)
	}
	m.rendered = m.renderMarkdown(m.seq.Full())
	return nil
}

func (m *model) renderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.wrapWidth(4)),
	)
	if err != nil {
		return wordwrap.String(text, m.wrapWidth(4))
	}
	out, err := renderer.Render(text)
	if err != nil {
		return wordwrap.String(text, m.wrapWidth(4))
	}
	return strings.Trim(out, "\n")
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.viewportDirty {
		return
	}
	m.viewport.SetContent(m.buildTabContent())
	m.viewportDirty = false
}

func clampCursor(idx, length int) int {
	if idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}
