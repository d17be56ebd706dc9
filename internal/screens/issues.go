package screens

import (
	"fmt"
	"strings"

	"gitrack/internal/github"
	"gitrack/internal/nav"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// IssueList shows the open issues of the selected repository.
type IssueList struct {
	base
	list list.Model
}

func newIssueList(params nav.Params, data github.Service) *IssueList {
	return &IssueList{
		base: newBase(nav.KindIssueList, "Issues", params, data),
		list: newList(nil),
	}
}

func (s *IssueList) Init() tea.Cmd {
	return s.load(github.ResourceIssues, github.Query{Repo: s.params.Repo})
}

func (s *IssueList) Capturing() bool { return filtering(s.list) }

func (s *IssueList) ShortHelp() []key.Binding { return Keys.listHints() }

func (s *IssueList) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.list.SetSize(width, height-1)
}

func (s *IssueList) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nav.LoadedMsg:
		if !s.accept(msg) || msg.Err != nil {
			return nil
		}
		issues, _ := valueAs[[]github.Issue](msg)
		return s.list.SetItems(issueEntries(s.params.Repo, issues))
	case tea.KeyMsg:
		if filtering(s.list) {
			break
		}
		switch {
		case key.Matches(msg, Keys.Open):
			if ref, ok := selectedRef(s.list); ok {
				s.events.ItemSelected(ref.(nav.IssueRef))
			}
			return nil
		case key.Matches(msg, Keys.Reload):
			return s.Init()
		}
	}
	if cmd := s.tick(msg); cmd != nil {
		return cmd
	}
	return updateList(&s.list, msg)
}

func (s *IssueList) View() string {
	return s.status() + "\n" + s.list.View()
}

func issueEntries(repo string, issues []github.Issue) []list.Item {
	items := make([]list.Item, 0, len(issues))
	for _, is := range issues {
		items = append(items, entry{
			title: fmt.Sprintf("#%d %s", is.Number, is.Title),
			desc:  issueSummary(is),
			ref:   nav.IssueRef{Repo: repo, Number: is.Number},
		})
	}
	return items
}

func issueSummary(is github.Issue) string {
	parts := []string{is.State, "by " + is.User.Login}
	if is.Comments > 0 {
		parts = append(parts, fmt.Sprintf("%d comments", is.Comments))
	}
	if len(is.Labels) > 0 {
		names := make([]string, 0, len(is.Labels))
		for _, l := range is.Labels {
			names = append(names, l.Name)
		}
		parts = append(parts, strings.Join(names, ", "))
	}
	return strings.Join(parts, " · ")
}

// MilestoneList shows the open milestones of the selected repository.
type MilestoneList struct {
	base
	list list.Model
}

func newMilestoneList(params nav.Params, data github.Service) *MilestoneList {
	return &MilestoneList{
		base: newBase(nav.KindMilestoneList, "Milestones", params, data),
		list: newList(nil),
	}
}

func (s *MilestoneList) Init() tea.Cmd {
	return s.load(github.ResourceMilestones, github.Query{Repo: s.params.Repo})
}

func (s *MilestoneList) Capturing() bool { return filtering(s.list) }

func (s *MilestoneList) ShortHelp() []key.Binding { return Keys.listHints() }

func (s *MilestoneList) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.list.SetSize(width, height-1)
}

func (s *MilestoneList) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nav.LoadedMsg:
		if !s.accept(msg) || msg.Err != nil {
			return nil
		}
		milestones, _ := valueAs[[]github.Milestone](msg)
		return s.list.SetItems(milestoneEntries(s.params.Repo, milestones))
	case tea.KeyMsg:
		if filtering(s.list) {
			break
		}
		switch {
		case key.Matches(msg, Keys.Open):
			if ref, ok := selectedRef(s.list); ok {
				s.events.ItemSelected(ref.(nav.MilestoneRef))
			}
			return nil
		case key.Matches(msg, Keys.Reload):
			return s.Init()
		}
	}
	if cmd := s.tick(msg); cmd != nil {
		return cmd
	}
	return updateList(&s.list, msg)
}

func (s *MilestoneList) View() string {
	return s.status() + "\n" + s.list.View()
}

func milestoneEntries(repo string, milestones []github.Milestone) []list.Item {
	items := make([]list.Item, 0, len(milestones))
	for _, m := range milestones {
		items = append(items, entry{
			title: m.Title,
			desc:  milestoneSummary(m),
			ref:   nav.MilestoneRef{Repo: repo, Number: m.Number, Title: m.Title},
		})
	}
	return items
}

func milestoneSummary(m github.Milestone) string {
	s := fmt.Sprintf("%.0f%% complete · %d open · %d closed", m.Progress()*100, m.OpenIssues, m.ClosedIssues)
	if m.DueOn != nil {
		s += " · due " + m.DueOn.Format("Jan 2, 2006")
	}
	return s
}
