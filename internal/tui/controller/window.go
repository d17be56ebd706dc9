package controller

import (
	"gitrack/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg updates the model and every mounted screen with the
// new terminal dimensions.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Resize(msg.Width, msg.Height)
	if m.CurrentAppMode == model.ModeLogOverlay {
		refreshLogViewport(m)
	}
	return m, nil
}
