package controller

import (
	"fmt"

	"gitrack/internal/nav"
	"gitrack/internal/session"
	"gitrack/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeScreen struct {
	id      string
	kind    nav.Kind
	params  nav.Params
	events  nav.Events
	capture bool
	updates []tea.Msg
	inits   int
	width   int
	height  int
}

func (s *fakeScreen) ID() string                  { return s.id }
func (s *fakeScreen) Kind() nav.Kind              { return s.kind }
func (s *fakeScreen) Title() string               { return s.kind.String() }
func (s *fakeScreen) View() string                { return "view of " + s.id }
func (s *fakeScreen) SetEvents(events nav.Events) { s.events = events }
func (s *fakeScreen) Capturing() bool             { return s.capture }

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) tea.Cmd {
	s.updates = append(s.updates, msg)
	return nil
}

func (s *fakeScreen) SetSize(width, height int) {
	s.width, s.height = width, height
}

type fakeFactory struct {
	made []*fakeScreen
}

func (f *fakeFactory) MakeScreen(kind nav.Kind, params nav.Params) (nav.Screen, error) {
	s := &fakeScreen{id: fmt.Sprintf("%s-%d", kind, len(f.made)), kind: kind, params: params}
	f.made = append(f.made, s)
	return s, nil
}

// newTestModel starts a shell on a memory session. With a credential and a
// target the main flow is shown.
func newTestModel(credential bool, target string) (*model.Model, *fakeFactory, *session.Store) {
	store := session.NewMemory()
	if credential {
		_ = store.SetCredential("tok", "octocat")
	}
	if target != "" {
		_ = store.SelectTarget(target)
	}
	f := &fakeFactory{}
	m, err := model.InitializeModel(model.Config{Session: store, Factory: f})
	if err != nil {
		panic(err)
	}
	m.Resize(100, 30)
	m.Init()
	return m, f, store
}

// top returns the visible fake screen.
func top(m *model.Model) *fakeScreen {
	s, ok := m.Navigator.Active().Top()
	if !ok {
		return nil
	}
	return s.(*fakeScreen)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
