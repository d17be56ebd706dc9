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

type setting int

const (
	settingSwitchTarget setting = iota
	settingCopyLink
	settingLogout
)

// Settings is a small menu of account and repository actions.
type Settings struct {
	base
	session   Session
	clipboard func(string) error
	list      list.Model
}

func newSettings(params nav.Params, data github.Service, session Session, clipboard func(string) error) *Settings {
	items := []list.Item{
		entry{title: "Switch repository", desc: "Pick another repository to track", ref: settingSwitchTarget},
		entry{title: "Copy repository link", desc: "https://github.com/" + params.Repo, ref: settingCopyLink},
		entry{title: "Log out", desc: "Forget the stored token", ref: settingLogout},
	}
	l := newList(items)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	return &Settings{
		base:      newBase(nav.KindSettings, "Settings", params, data),
		session:   session,
		clipboard: clipboard,
		list:      l,
	}
}

func (s *Settings) Init() tea.Cmd { return nil }

func (s *Settings) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose"))}
}

func (s *Settings) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.list.SetSize(width, height-3)
}

func (s *Settings) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, Keys.Open) {
		if ref, ok := selectedRef(s.list); ok {
			s.choose(ref.(setting))
		}
		return nil
	}
	return updateList(&s.list, msg)
}

func (s *Settings) choose(choice setting) {
	s.err, s.notice = nil, ""
	switch choice {
	case settingSwitchTarget:
		s.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionSwitchTarget, Value: s.params.Repo})
	case settingCopyLink:
		url := "https://github.com/" + s.params.Repo
		if err := s.clipboard(url); err != nil {
			s.err = fmt.Errorf("copying link: %w", err)
			return
		}
		s.notice = "Copied " + url
		s.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionCopyURL, Value: url})
	case settingLogout:
		s.events.LogoutRequested()
	}
}

func (s *Settings) View() string {
	var b strings.Builder
	b.WriteString(design.SubtitleStyle.Render(fmt.Sprintf("Signed in as %s · tracking %s", s.session.Login(), s.params.Repo)))
	b.WriteString("\n")
	b.WriteString(s.status())
	b.WriteString("\n")
	b.WriteString(s.list.View())
	return b.String()
}
