package screens

import (
	"errors"
	"strings"

	"gitrack/internal/github"
	"gitrack/internal/nav"
	"gitrack/internal/tui/design"
	"gitrack/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Login asks for a personal access token, verifies it against the API and
// stores it. It confirms ActionAuthenticated once the credential is saved.
type Login struct {
	base
	session Session
	input   textinput.Model
	pending string
}

func newLogin(params nav.Params, data github.Service, session Session) *Login {
	in := textinput.New()
	in.Placeholder = "ghp_…"
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.CharLimit = 255
	in.Width = 48
	in.Focus()
	return &Login{
		base:    newBase(nav.KindLogin, "Sign in", params, data),
		session: session,
		input:   in,
	}
}

func (s *Login) Init() tea.Cmd {
	return textinput.Blink
}

// Capturing keeps every key in the token field.
func (s *Login) Capturing() bool { return true }

func (s *Login) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in"))}
}

func (s *Login) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nav.LoadedMsg:
		if s.accept(msg) {
			s.verified(msg)
		}
		return nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			return s.submit()
		}
	}
	if cmd := s.tick(msg); cmd != nil {
		return cmd
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *Login) submit() tea.Cmd {
	if s.loading > 0 {
		return nil
	}
	token := strings.TrimSpace(s.input.Value())
	if token == "" {
		s.err = errors.New("enter a personal access token")
		return nil
	}
	s.pending = token
	return s.load(github.ResourceCurrentUser, github.Query{Token: token})
}

func (s *Login) verified(msg nav.LoadedMsg) {
	token := s.pending
	s.pending = ""
	if msg.Err != nil {
		s.input.SetValue("")
		return
	}
	user, ok := valueAs[github.User](msg)
	if !ok {
		return
	}
	if err := s.session.SetCredential(token, user.Login); err != nil {
		s.err = err
		logging.Error(subsystem, err, "Could not store credential")
		return
	}
	logging.Info(subsystem, "Signed in as %s", user.Login)
	s.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionAuthenticated, Value: user.Login})
}

func (s *Login) View() string {
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render("Sign in to GitHub"))
	b.WriteString("\n")
	b.WriteString(design.SubtitleStyle.Render("Paste a personal access token with the repo scope."))
	b.WriteString("\n\n")
	b.WriteString(design.InputStyle.Render(s.input.View()))
	if st := s.status(); st != "" {
		b.WriteString("\n\n" + st)
	}
	return lipgloss.NewStyle().Padding(design.SpaceXS, design.SpaceSM).Render(b.String())
}
