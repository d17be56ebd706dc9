package screens

import (
	"gitrack/internal/github"
	"gitrack/internal/nav"
	"gitrack/internal/tui/design"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UserProfile is a modal card about another account.
type UserProfile struct {
	base
	user *github.User
}

func newUserProfile(params nav.Params, data github.Service) *UserProfile {
	return &UserProfile{
		base: newBase(nav.KindUserProfile, params.Login, params, data),
	}
}

func (s *UserProfile) Init() tea.Cmd {
	return s.load(github.ResourceUser, github.Query{Login: s.params.Login})
}

func (s *UserProfile) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("enter", "backspace"), key.WithHelp("enter", "close"))}
}

func (s *UserProfile) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nav.LoadedMsg:
		if s.accept(msg) && msg.Err == nil {
			if u, ok := valueAs[github.User](msg); ok {
				s.user = &u
			}
		}
		return nil
	case tea.KeyMsg:
		if key.Matches(msg, Keys.Open, Keys.Back) {
			s.events.BackRequested()
		}
		return nil
	}
	return s.tick(msg)
}

func (s *UserProfile) View() string {
	content := s.status()
	if s.user != nil {
		content = renderUser(*s.user, min(s.width, 60))
		if s.user.HTMLURL != "" {
			content += "\n" + design.DimStyle.Render(s.user.HTMLURL)
		}
	}
	card := design.ModalStyle.Render(content)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, card)
}
