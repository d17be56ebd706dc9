package components

import (
	"strings"

	"gitrack/internal/tui/design"
	"gitrack/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header is the top row: app name and flow on the left, the repository being
// browsed (or the version before one is picked) on the right.
type Header struct {
	App     string
	Flow    string
	Repo    string
	Version string
	Width   int
}

// Render returns the header row. The repository is shortened before the left
// side is, and dropped only when not even a few characters of it fit.
func (h Header) Render() string {
	left := h.App
	if h.Flow != "" {
		left += " " + design.TextSecondaryStyle.Render(h.Flow)
	}

	inner := max(h.Width-design.SpaceSM*2, 0)
	right := h.Repo
	style := design.TextStyle
	if right == "" {
		right, style = h.Version, design.DimStyle
	}

	content := left
	if room := inner - lipgloss.Width(left) - 2; right != "" && room >= minRepoWidth {
		right = style.Render(utils.TruncateString(right, room))
		content = left + strings.Repeat(" ", inner-lipgloss.Width(left)-lipgloss.Width(right)) + right
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}

const minRepoWidth = 6
