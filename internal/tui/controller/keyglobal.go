package controller

import (
	"strings"
	"time"

	"gitrack/internal/tui/model"
	"gitrack/internal/tui/view"
	"gitrack/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses. Overlays take keys first, then a
// screen that is capturing input, then the global bindings; anything left is
// the visible screen's.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.ForceQuit) {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return m, nil
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Help, m.Keys.Back) {
			m.CurrentAppMode = model.ModeMain
		}
		return m, nil
	}

	screen, ok := topScreen(m)
	if ok && capturing(screen) {
		return m, screen.Update(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.NextTab):
		m.Navigator.Cycle(1)
		return m, nil
	case key.Matches(keyMsg, m.Keys.PrevTab):
		m.Navigator.Cycle(-1)
		return m, nil
	case key.Matches(keyMsg, m.Keys.Back):
		// The pop callback finishes the owning leaf.
		if stack := m.Navigator.Active(); stack != nil && !stack.PopTop() {
			logging.Debug(controllerSubsystem, "Nothing to go back to in %q", stack.Name())
		}
		return m, nil
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		refreshLogViewport(m)
		m.LogViewport.GotoBottom()
		return m, nil
	}

	if !ok {
		return m, nil
	}
	return m, screen.Update(keyMsg)
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "L", "esc":
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case "y":
		if err := copyToClipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
			logging.Error(controllerSubsystem, err, "Failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, 3*time.Second)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, 3*time.Second)
	default:
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
		return m, cmd
	}
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye."
	return m, tea.Quit
}

func refreshLogViewport(m *model.Model) {
	if !m.ActivityLogDirty && m.LogViewport.TotalLineCount() > 0 {
		return
	}
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
	m.ActivityLogDirty = false
}
