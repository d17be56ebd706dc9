package coordinator

import (
	"fmt"

	"gitrack/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeScreen struct {
	id     string
	kind   nav.Kind
	params nav.Params
	events nav.Events
}

func (s *fakeScreen) ID() string                  { return s.id }
func (s *fakeScreen) Kind() nav.Kind              { return s.kind }
func (s *fakeScreen) Title() string               { return s.kind.String() }
func (s *fakeScreen) Init() tea.Cmd               { return nil }
func (s *fakeScreen) Update(msg tea.Msg) tea.Cmd  { return nil }
func (s *fakeScreen) View() string                { return s.id }
func (s *fakeScreen) SetSize(width, height int)   {}
func (s *fakeScreen) SetEvents(events nav.Events) { s.events = events }

type fakeFactory struct {
	made []*fakeScreen
	fail map[nav.Kind]bool
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{fail: map[nav.Kind]bool{}}
}

func (f *fakeFactory) MakeScreen(kind nav.Kind, params nav.Params) (nav.Screen, error) {
	if f.fail[kind] {
		return nil, &nav.ConstructionError{Kind: kind, Reason: "missing dependency"}
	}
	s := &fakeScreen{id: fmt.Sprintf("%s-%d", kind, len(f.made)), kind: kind, params: params}
	f.made = append(f.made, s)
	return s, nil
}

// last returns the most recently built screen of kind.
func (f *fakeFactory) last(kind nav.Kind) *fakeScreen {
	for i := len(f.made) - 1; i >= 0; i-- {
		if f.made[i].kind == kind {
			return f.made[i]
		}
	}
	return nil
}

type fakeSession struct {
	credential bool
	target     string
	cleared    int
	clearErr   error
}

func (s *fakeSession) HasCredential() bool     { return s.credential }
func (s *fakeSession) HasSelectedTarget() bool { return s.target != "" }
func (s *fakeSession) SelectedTarget() string  { return s.target }
func (s *fakeSession) ClearCredential() error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.cleared++
	s.credential = false
	return nil
}

func newTestEnv() (*env, *fakeFactory) {
	f := newFakeFactory()
	return &env{factory: f, navigator: nav.NewNavigator()}, f
}
