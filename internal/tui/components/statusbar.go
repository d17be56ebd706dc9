package components

import (
	"strings"

	"gitrack/internal/tui/design"
	"gitrack/internal/tui/model"
	"gitrack/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message that replaces the left text
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	left := s.LeftText
	if s.Message != "" {
		left = s.Message
	}
	inner := s.Width - design.SpaceSM*2

	var content string
	switch {
	case left != "" && s.RightText != "":
		padding := inner - lipgloss.Width(left) - lipgloss.Width(s.RightText)
		if padding > 0 {
			content = left + strings.Repeat(" ", padding) + s.RightText
		} else {
			content = utils.TruncateString(left, inner)
		}
	case left != "":
		content = utils.TruncateString(left, inner)
	default:
		content = s.RightText
	}

	return s.style().
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) style() lipgloss.Style {
	if s.Message != "" && s.MessageType == model.StatusBarError {
		return design.StatusBarErrorStyle
	}
	return design.StatusBarStyle
}
