package screens

import (
	"fmt"
	"strings"

	"gitrack/internal/github"
	"gitrack/internal/nav"
	"gitrack/internal/tui/design"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// MilestoneDetail shows a milestone's progress and every issue in it.
type MilestoneDetail struct {
	base
	milestone *github.Milestone
	bar       progress.Model
	list      list.Model
}

func newMilestoneDetail(params nav.Params, data github.Service) *MilestoneDetail {
	return &MilestoneDetail{
		base: newBase(nav.KindMilestoneDetail, fmt.Sprintf("Milestone %d", params.Milestone), params, data),
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		list: newList(nil),
	}
}

func (s *MilestoneDetail) Init() tea.Cmd {
	q := github.Query{Repo: s.params.Repo, Milestone: s.params.Milestone}
	return tea.Batch(
		s.load(github.ResourceMilestone, q),
		s.load(github.ResourceIssues, q),
	)
}

func (s *MilestoneDetail) Capturing() bool { return filtering(s.list) }

func (s *MilestoneDetail) ShortHelp() []key.Binding {
	return []key.Binding{Keys.Open, Keys.Reload, Keys.Back}
}

const milestoneHeaderHeight = 4

func (s *MilestoneDetail) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.bar.Width = min(max(width-20, 10), 60)
	s.list.SetSize(width, height-milestoneHeaderHeight)
}

func (s *MilestoneDetail) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nav.LoadedMsg:
		if !s.accept(msg) || msg.Err != nil {
			return nil
		}
		switch v := msg.Value.(type) {
		case github.Milestone:
			s.milestone = &v
			s.title = v.Title
		case []github.Issue:
			return s.list.SetItems(issueEntries(s.params.Repo, v))
		}
		return nil
	case tea.KeyMsg:
		if filtering(s.list) {
			break
		}
		switch {
		case key.Matches(msg, Keys.Back):
			s.events.BackRequested()
			return nil
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

func (s *MilestoneDetail) View() string {
	var b strings.Builder
	if m := s.milestone; m != nil {
		b.WriteString(design.TitleStyle.Render(m.Title))
		b.WriteString("  ")
		b.WriteString(design.IssueStateStyle(m.State).Render(m.State))
		b.WriteString("\n")
		b.WriteString(s.bar.ViewAs(m.Progress()))
		b.WriteString(" ")
		b.WriteString(design.SubtitleStyle.Render(milestoneSummary(*m)))
	}
	b.WriteString("\n")
	b.WriteString(s.status())
	b.WriteString("\n")
	b.WriteString(s.list.View())
	return b.String()
}
