package controller

import (
	"fmt"
	"time"

	"gitrack/internal/nav"
	"gitrack/internal/tui/model"
	"gitrack/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerSubsystem = "Controller"

// statusDuration is how long warnings from the log stay in the status bar.
const statusDuration = 5 * time.Second

// Update runs one step of the event loop: dispatch the message, then mount
// whatever the coordinators put on screen while handling it, then quit if
// the tree failed.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	m, cmd := mainControllerDispatch(m, msg)
	cmds := []tea.Cmd{cmd, m.MountPending()}

	if m.Fatal != nil && m.CurrentAppMode != model.ModeQuitting {
		m.CurrentAppMode = model.ModeQuitting
		m.QuittingMessage = fmt.Sprintf("Cannot continue: %v", m.Fatal)
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// mainControllerDispatch is the central message routing function. Keys go
// through the global handler, data results are routed to the screen that
// asked for them, everything else goes to the visible screen.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case nav.LoadedMsg:
		return m, routeLoaded(m, msg)

	case model.NewLogEntryMsg:
		return handleNewLogEntry(m, msg)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage(msg.Seq)
		return m, nil

	case spinner.TickMsg:
		return m, broadcast(m, msg)

	default:
		return m, updateTop(m, msg)
	}
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) (*model.Model, tea.Cmd) {
	entry := msg.Entry
	cmds := []tea.Cmd{model.ListenForLogEntries(m.LogChannel)}

	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, model.FormatLogEntry(entry))
		if m.CurrentAppMode == model.ModeLogOverlay {
			refreshLogViewport(m)
		}
	}
	if entry.Level >= logging.LevelWarn {
		msgType := model.StatusBarInfo
		if entry.Level == logging.LevelError {
			msgType = model.StatusBarError
		}
		cmds = append(cmds, m.SetStatusMessage(entry.Message, msgType, statusDuration))
	}
	return m, tea.Batch(cmds...)
}
