package model

import (
	"fmt"

	"gitrack/internal/coordinator"
	"gitrack/internal/nav"
	"gitrack/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const modelSubsystem = "Model"

// Config is what the shell needs to build and start the coordinator tree.
type Config struct {
	Session    coordinator.SessionState
	Factory    nav.Factory
	Tabs       []coordinator.TabSpec
	DebugMode  bool
	Version    string
	LogChannel <-chan logging.LogEntry
}

// InitializeModel builds the model and starts the root coordinator. The
// first flow's screens are mounted by Init once the program runs.
func InitializeModel(cfg Config) (*Model, error) {
	m := &Model{
		Navigator:      nav.NewNavigator(),
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		CurrentAppMode: ModeMain,
		DebugMode:      cfg.DebugMode,
		Version:        cfg.Version,
		LogViewport:    viewport.New(0, 0),
		LogChannel:     cfg.LogChannel,
	}

	root, err := coordinator.NewRoot(coordinator.Options{
		Session:   cfg.Session,
		Factory:   cfg.Factory,
		Navigator: m.Navigator,
		Tabs:      cfg.Tabs,
		OnFatal: func(err error) {
			logging.Error(modelSubsystem, err, "Navigation cannot continue")
			m.Fatal = err
		},
	})
	if err != nil {
		return nil, err
	}
	if err := root.Start(); err != nil {
		return nil, fmt.Errorf("starting navigation: %w", err)
	}
	m.Root = root
	return m, nil
}

// Init mounts whatever the root put on screen and starts listening for log
// entries.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.MountPending(),
		ListenForLogEntries(m.LogChannel),
	)
}

// MountPending sizes and initialises screens that were put on screen since
// the last call.
func (m *Model) MountPending() tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range m.Navigator.Drain() {
		s.SetSize(m.Width, m.BodyHeight())
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

// Resize propagates the window size to every mounted screen.
func (m *Model) Resize(width, height int) {
	m.Width, m.Height = width, height
	m.Help.Width = width
	m.LogViewport.Width = max(width-8, 10)
	m.LogViewport.Height = max(height-8, 3)
	m.Navigator.Each(func(s nav.Screen) {
		s.SetSize(width, m.BodyHeight())
	})
}
