package controller

import (
	"context"

	"gitrack/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram builds the model, starts the coordinator tree and wraps both in
// a Bubble Tea program. Cancelling ctx stops the program.
func NewProgram(ctx context.Context, cfg model.Config) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg)
	if err != nil {
		return nil, err
	}
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen(), tea.WithContext(ctx)), nil
}
