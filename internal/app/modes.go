package app

import (
	"context"
	"fmt"
	"io"

	"gitrack/internal/coordinator"
	"gitrack/internal/tui/controller"
	"gitrack/internal/tui/design"
	"gitrack/internal/tui/model"
	"gitrack/pkg/logging"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(config.GitrackConfig.UI.ColorMode)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(logging.ParseLevel(config.GitrackConfig.UI.LogLevel))
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(ctx, model.Config{
		Session:    services.Session,
		Factory:    services.Factory,
		Tabs:       coordinator.DefaultTabs,
		DebugMode:  config.Debug,
		Version:    config.Version,
		LogChannel: logChan,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	// Run the TUI until user exits
	final, err := p.Run()
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	if am, ok := final.(controller.AppModel); ok && am.FatalError() != nil {
		return fmt.Errorf("navigation stopped: %w", am.FatalError())
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}

// PrintStatus writes who is signed in, the selected repository and the flow
// the TUI would start with.
func (a *Application) PrintStatus(w io.Writer) error {
	s := a.services.Session
	login := s.Login()
	if !s.HasCredential() {
		login = "(not signed in)"
	}
	repo := s.SelectedTarget()
	if !s.HasSelectedTarget() {
		repo = "(none)"
	}
	_, err := fmt.Fprintf(w, "Signed in:   %s\nRepository:  %s\nStarts with: %s\n",
		login, repo, a.services.Stage())
	return err
}
