package screens

import (
	"fmt"

	"gitrack/internal/github"
	"gitrack/internal/nav"
	"gitrack/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RepoPicker lists the repositories of the signed-in user. Picking one stores
// it as the selected target and confirms ActionTargetSelected.
type RepoPicker struct {
	base
	session Session
	list    list.Model
}

func newRepoPicker(params nav.Params, data github.Service, session Session) *RepoPicker {
	return &RepoPicker{
		base:    newBase(nav.KindRepoPicker, "Repositories", params, data),
		session: session,
		list:    newList(nil),
	}
}

func (s *RepoPicker) Init() tea.Cmd {
	return s.load(github.ResourceRepositories, github.Query{})
}

func (s *RepoPicker) Capturing() bool { return filtering(s.list) }

func (s *RepoPicker) ShortHelp() []key.Binding {
	return append(Keys.listHints(), Keys.Logout)
}

func (s *RepoPicker) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.list.SetSize(width, height-1)
}

func (s *RepoPicker) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nav.LoadedMsg:
		if !s.accept(msg) || msg.Err != nil {
			return nil
		}
		repos, _ := valueAs[[]github.Repository](msg)
		return s.list.SetItems(repoEntries(repos))
	case tea.KeyMsg:
		if filtering(s.list) {
			break
		}
		switch {
		case key.Matches(msg, Keys.Open):
			if ref, ok := selectedRef(s.list); ok {
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

func (s *RepoPicker) View() string {
	if st := s.status(); st != "" {
		return st + "\n" + s.list.View()
	}
	return "\n" + s.list.View()
}

func repoEntries(repos []github.Repository) []list.Item {
	items := make([]list.Item, 0, len(repos))
	for _, r := range repos {
		desc := fmt.Sprintf("★ %d · %d open issues", r.StargazersCount, r.OpenIssuesCount)
		if r.Description != "" {
			desc = r.Description + " · " + desc
		}
		items = append(items, entry{title: r.FullName, desc: desc, ref: r.FullName})
	}
	return items
}

// pickTarget stores repo as the selected target and reports it upward.
func pickTarget(b *base, session Session, repo string) {
	if err := session.SelectTarget(repo); err != nil {
		b.err = err
		logging.Error(subsystem, err, "Could not store selected repository")
		return
	}
	b.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionTargetSelected, Value: repo})
}
