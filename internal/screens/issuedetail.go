package screens

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gitrack/internal/github"
	"gitrack/internal/nav"
	"gitrack/internal/tui/design"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// issueRefPattern matches "#123" that is not part of a word, URL fragment or
// HTML entity.
var issueRefPattern = regexp.MustCompile(`(?:^|[^\w/&#])#(\d+)\b`)

// IssueDetail shows an issue with its comments. Other issues it mentions can
// be opened from here, which is how detail leaves chain.
type IssueDetail struct {
	base
	clipboard func(string) error
	issue     *github.Issue
	comments  []github.Comment
	refs      []int
	ref       int
	view      viewport.Model
}

func newIssueDetail(params nav.Params, data github.Service, clipboard func(string) error) *IssueDetail {
	return &IssueDetail{
		base:      newBase(nav.KindIssueDetail, fmt.Sprintf("#%d", params.Number), params, data),
		clipboard: clipboard,
		view:      viewport.New(0, 0),
	}
}

func (s *IssueDetail) Init() tea.Cmd {
	q := github.Query{Repo: s.params.Repo, Number: s.params.Number}
	return tea.Batch(
		s.load(github.ResourceIssue, q),
		s.load(github.ResourceComments, q),
	)
}

func (s *IssueDetail) ShortHelp() []key.Binding { return Keys.detailHints() }

func (s *IssueDetail) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.view.Width = width
	s.view.Height = max(height-2, 1)
	s.render()
}

func (s *IssueDetail) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nav.LoadedMsg:
		if !s.accept(msg) || msg.Err != nil {
			return nil
		}
		switch v := msg.Value.(type) {
		case github.Issue:
			s.issue = &v
			s.title = fmt.Sprintf("#%d %s", v.Number, v.Title)
		case []github.Comment:
			s.comments = v
		}
		s.refs = references(s.params.Number, s.texts()...)
		s.ref = 0
		s.render()
		return nil
	case tea.KeyMsg:
		if cmd, handled := s.handleKey(msg); handled {
			return cmd
		}
	}
	if cmd := s.tick(msg); cmd != nil {
		return cmd
	}
	var cmd tea.Cmd
	s.view, cmd = s.view.Update(msg)
	return cmd
}

func (s *IssueDetail) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, Keys.Back):
		s.events.BackRequested()
	case key.Matches(msg, Keys.NextRef):
		s.cycle(1)
	case key.Matches(msg, Keys.PrevRef):
		s.cycle(-1)
	case key.Matches(msg, Keys.Open):
		if len(s.refs) > 0 {
			s.events.ItemSelected(nav.IssueRef{Repo: s.params.Repo, Number: s.refs[s.ref]})
		}
	case key.Matches(msg, Keys.Author):
		if s.issue != nil && s.issue.User.Login != "" {
			s.events.ItemSelected(nav.UserRef{Login: s.issue.User.Login})
		}
	case key.Matches(msg, Keys.Milestone):
		if s.issue != nil && s.issue.Milestone != nil {
			m := s.issue.Milestone
			s.events.ItemSelected(nav.MilestoneRef{Repo: s.params.Repo, Number: m.Number, Title: m.Title})
		}
	case key.Matches(msg, Keys.CopyURL):
		s.copyURL()
	case key.Matches(msg, Keys.Reload):
		return s.Init(), true
	default:
		return nil, false
	}
	return nil, true
}

func (s *IssueDetail) cycle(step int) {
	if len(s.refs) == 0 {
		return
	}
	s.ref = (s.ref + step + len(s.refs)) % len(s.refs)
	s.render()
}

func (s *IssueDetail) copyURL() {
	if s.issue == nil || s.issue.HTMLURL == "" {
		return
	}
	s.err, s.notice = nil, ""
	if err := s.clipboard(s.issue.HTMLURL); err != nil {
		s.err = fmt.Errorf("copying link: %w", err)
		return
	}
	s.notice = "Copied " + s.issue.HTMLURL
	s.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionCopyURL, Value: s.issue.HTMLURL})
}

func (s *IssueDetail) texts() []string {
	var out []string
	if s.issue != nil {
		out = append(out, s.issue.Body)
	}
	for _, c := range s.comments {
		out = append(out, c.Body)
	}
	return out
}

// references returns the distinct issue numbers mentioned in texts, in order
// of first mention, leaving out self.
func references(self int, texts ...string) []int {
	seen := map[int]bool{self: true}
	var refs []int
	for _, t := range texts {
		for _, m := range issueRefPattern.FindAllStringSubmatch(t, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 || seen[n] {
				continue
			}
			seen[n] = true
			refs = append(refs, n)
		}
	}
	return refs
}

func (s *IssueDetail) render() {
	if s.issue == nil {
		s.view.SetContent("")
		return
	}
	is := s.issue
	width := max(s.view.Width-2, 20)
	var b strings.Builder

	b.WriteString(design.TitleStyle.Render(fmt.Sprintf("#%d %s", is.Number, is.Title)))
	b.WriteString("\n")
	meta := []string{
		design.IssueStateStyle(is.State).Render(is.State),
		"opened by " + design.KeyStyle.Render(is.User.Login),
		is.CreatedAt.Format("Jan 2, 2006"),
	}
	if is.Milestone != nil {
		meta = append(meta, "milestone "+is.Milestone.Title)
	}
	b.WriteString(strings.Join(meta, design.DimStyle.Render(" · ")))
	b.WriteString("\n")
	if len(is.Labels) > 0 {
		chips := make([]string, 0, len(is.Labels))
		for _, l := range is.Labels {
			chips = append(chips, design.LabelStyle(l.Color).Render(l.Name))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	body := is.Body
	if strings.TrimSpace(body) == "" {
		body = design.DimStyle.Render("No description provided.")
	}
	b.WriteString(design.TextStyle.Width(width).Render(body))
	b.WriteString("\n")

	for _, c := range s.comments {
		b.WriteString("\n")
		b.WriteString(design.SubtitleStyle.Render(fmt.Sprintf("%s commented on %s", c.User.Login, c.CreatedAt.Format("Jan 2, 2006"))))
		b.WriteString("\n")
		b.WriteString(design.TextStyle.Width(width).Render(c.Body))
		b.WriteString("\n")
	}
	s.view.SetContent(b.String())
}

func (s *IssueDetail) View() string {
	var refs string
	if len(s.refs) > 0 {
		parts := make([]string, 0, len(s.refs))
		for i, n := range s.refs {
			label := fmt.Sprintf("#%d", n)
			if i == s.ref {
				label = design.KeyStyle.Render("[" + label + "]")
			}
			parts = append(parts, label)
		}
		refs = design.DimStyle.Render("Mentions: ") + strings.Join(parts, " ")
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.status(), s.view.View(), refs)
}
