package screens

import (
	"fmt"
	"strings"

	"gitrack/internal/github"
	"gitrack/internal/nav"
	"gitrack/internal/tui/design"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Profile shows the signed-in user and their repositories. Picking a
// repository switches the selected target in place.
type Profile struct {
	base
	session Session
	user    *github.User
	list    list.Model
}

func newProfile(params nav.Params, data github.Service, session Session) *Profile {
	return &Profile{
		base:    newBase(nav.KindProfile, "Profile", params, data),
		session: session,
		list:    newList(nil),
	}
}

func (s *Profile) Init() tea.Cmd {
	return tea.Batch(
		s.load(github.ResourceCurrentUser, github.Query{}),
		s.load(github.ResourceRepositories, github.Query{}),
	)
}

func (s *Profile) Capturing() bool { return filtering(s.list) }

func (s *Profile) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "switch to repository")),
		Keys.Reload,
		Keys.Logout,
	}
}

func (s *Profile) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.list.SetSize(width, height-profileHeaderHeight)
}

const profileHeaderHeight = 5

func (s *Profile) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nav.LoadedMsg:
		if !s.accept(msg) || msg.Err != nil {
			return nil
		}
		switch v := msg.Value.(type) {
		case github.User:
			s.user = &v
		case []github.Repository:
			return s.list.SetItems(repoEntries(v))
		}
		return nil
	case tea.KeyMsg:
		if filtering(s.list) {
			break
		}
		switch {
		case key.Matches(msg, Keys.Open):
			if ref, ok := selectedRef(s.list); ok && ref.(string) != s.params.Repo {
				pickTarget(&s.base, s.session, ref.(string))
			}
			return nil
		case key.Matches(msg, Keys.Reload):
			return s.Init()
		case key.Matches(msg, Keys.Logout):
			s.events.LogoutRequested()
			return nil
		}
	}
	if cmd := s.tick(msg); cmd != nil {
		return cmd
	}
	return updateList(&s.list, msg)
}

func (s *Profile) View() string {
	var b strings.Builder
	if s.user != nil {
		b.WriteString(renderUser(*s.user, s.width))
	} else {
		b.WriteString(design.DimStyle.Render(s.session.Login()))
	}
	b.WriteString("\n")
	b.WriteString(s.status())
	b.WriteString("\n")
	b.WriteString(s.list.View())
	return b.String()
}

// renderUser is shared by Profile and UserProfile.
func renderUser(u github.User, width int) string {
	var b strings.Builder
	name := u.Login
	if u.Name != "" {
		name = fmt.Sprintf("%s (%s)", u.Name, u.Login)
	}
	b.WriteString(design.TitleStyle.Render(name))
	b.WriteString("\n")
	if u.Bio != "" {
		b.WriteString(design.TextStyle.Width(max(width-2, 10)).Render(u.Bio))
		b.WriteString("\n")
	}
	var facts []string
	if u.Company != "" {
		facts = append(facts, u.Company)
	}
	if u.Location != "" {
		facts = append(facts, u.Location)
	}
	facts = append(facts,
		fmt.Sprintf("%d repos", u.PublicRepos),
		fmt.Sprintf("%d followers", u.Followers),
		fmt.Sprintf("%d following", u.Following),
	)
	b.WriteString(design.SubtitleStyle.Render(strings.Join(facts, " · ")))
	return b.String()
}
