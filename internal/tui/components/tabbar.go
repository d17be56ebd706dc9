package components

import (
	"gitrack/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// TabBar renders the names of the open navigation contexts.
type TabBar struct {
	Names  []string
	Active int
	Width  int
}

// Render returns the tab row, or an empty string when there is nothing to
// switch between.
func (t TabBar) Render() string {
	if len(t.Names) < 2 {
		return ""
	}
	tabs := make([]string, 0, len(t.Names))
	for i, name := range t.Names {
		style := design.TabStyle
		if i == t.Active {
			style = design.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(name))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().MaxWidth(t.Width).Render(row)
}
