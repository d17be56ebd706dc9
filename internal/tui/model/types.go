package model

import (
	"time"

	"gitrack/internal/coordinator"
	"gitrack/internal/nav"
	"gitrack/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

// MaxActivityLogLines bounds the activity log kept in memory.
const MaxActivityLogLines = 500

// Model is the state of the terminal shell around the coordinator tree. It
// owns no navigation state itself; everything on screen comes from the
// navigator the root coordinator drives.
type Model struct {
	Root      *coordinator.Root
	Navigator *nav.Navigator

	Keys KeyMap
	Help help.Model

	Width, Height  int
	CurrentAppMode AppMode
	DebugMode      bool
	Version        string

	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	LogChannel       <-chan logging.LogEntry

	StatusMessage     string
	StatusMessageType MessageType
	statusSeq         int

	// Fatal is set when the coordinator tree can no longer show anything.
	Fatal           error
	QuittingMessage string
}

// SetStatusMessage shows message in the status bar and clears it after
// clearAfter unless a newer message replaced it in the meantime.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusMessage = message
	m.StatusMessageType = msgType
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(clearAfter, func(time.Time) tea.Msg {
		return ClearStatusBarMsg{Seq: seq}
	})
}

// ClearStatusMessage clears the status bar if seq still identifies the
// message on display.
func (m *Model) ClearStatusMessage(seq int) {
	if seq == m.statusSeq {
		m.StatusMessage = ""
	}
}

// BodyHeight is the height left for the active screen after the header,
// tab bar and status bar.
func (m *Model) BodyHeight() int {
	return max(m.Height-chromeHeight, 1)
}

const chromeHeight = 4
