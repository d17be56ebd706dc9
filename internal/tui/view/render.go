package view

import (
	"strings"

	"gitrack/internal/coordinator"
	"gitrack/internal/nav"
	"gitrack/internal/tui/components"
	"gitrack/internal/tui/design"
	"gitrack/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const appName = "gitrack"

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage) + "\n"
	case model.ModeLogOverlay:
		return renderLogOverlay(m, m.Width, m.Height)
	}
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing…")
	}

	body := renderBody(m)
	if m.CurrentAppMode == model.ModeHelpOverlay {
		body = renderHelpOverlay(m)
	}

	parts := []string{renderHeader(m)}
	if tabs := renderTabs(m); tabs != "" {
		parts = append(parts, tabs)
	}
	parts = append(parts,
		lipgloss.NewStyle().Height(m.BodyHeight()).MaxHeight(m.BodyHeight()).Render(body),
		renderStatusBar(m),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(m *model.Model) string {
	h := components.Header{App: appName, Version: m.Version, Width: m.Width}
	if m.Root != nil {
		h.Flow = stageTitle(m.Root)
		if tabs, ok := m.Root.Active().(*coordinator.Tabs); ok {
			h.Repo = tabs.Repo()
		}
	}
	return h.Render()
}

func stageTitle(root *coordinator.Root) string {
	switch root.Stage() {
	case coordinator.StageAuth:
		return "Sign in"
	case coordinator.StageSelection:
		return "Choose a repository"
	default:
		return ""
	}
}

func renderTabs(m *model.Model) string {
	contexts := m.Navigator.Contexts()
	names := make([]string, 0, len(contexts))
	for _, c := range contexts {
		names = append(names, c.Name())
	}
	return components.TabBar{Names: names, Active: m.Navigator.ActiveIndex(), Width: m.Width}.Render()
}

func renderBody(m *model.Model) string {
	stack := m.Navigator.Active()
	if stack == nil {
		return ""
	}
	top, ok := stack.Top()
	if !ok {
		return ""
	}
	return top.View()
}

// breadcrumb lists the titles on the active stack, root first.
func breadcrumb(m *model.Model) string {
	stack := m.Navigator.Active()
	if stack == nil {
		return ""
	}
	var titles []string
	for _, s := range stack.Screens() {
		titles = append(titles, s.Title())
	}
	return strings.Join(titles, " › ")
}

func renderStatusBar(m *model.Model) string {
	bar := components.NewStatusBar(m.Width).
		WithLeftText(breadcrumb(m)).
		WithRightText(m.Help.ShortHelpView(shortHelp(m)))
	if m.StatusMessage != "" {
		bar.WithMessage(m.StatusMessage, m.StatusMessageType)
	}
	return bar.Render()
}

// shortHelp combines the visible screen's bindings with the global ones.
func shortHelp(m *model.Model) []key.Binding {
	return append(screenHelp(m), m.Keys.Help, m.Keys.Quit)
}

func renderHelpOverlay(m *model.Model) string {
	title := design.TitleStyle.Render("Keys")
	global := m.Help.FullHelpView(m.Keys.FullHelp())
	screen := m.Help.ShortHelpView(screenHelp(m))
	content := lipgloss.JoinVertical(lipgloss.Left, title, global, "", screen)
	box := design.ModalStyle.Render(content)
	return lipgloss.Place(m.Width, m.BodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

func screenHelp(m *model.Model) []key.Binding {
	top, ok := topOf(m.Navigator)
	if !ok {
		return nil
	}
	if h, ok := top.(interface{ ShortHelp() []key.Binding }); ok {
		return h.ShortHelp()
	}
	return nil
}

func topOf(n *nav.Navigator) (nav.Screen, bool) {
	stack := n.Active()
	if stack == nil {
		return nil, false
	}
	return stack.Top()
}
