package nav

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies a screen the Factory knows how to build.
type Kind int

const (
	KindUnknown Kind = iota
	KindLogin
	KindRepoPicker
	KindIssueList
	KindMilestoneList
	KindProfile
	KindSettings
	KindIssueDetail
	KindMilestoneDetail
	KindUserProfile
)

// String provides a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLogin:
		return "Login"
	case KindRepoPicker:
		return "RepoPicker"
	case KindIssueList:
		return "IssueList"
	case KindMilestoneList:
		return "MilestoneList"
	case KindProfile:
		return "Profile"
	case KindSettings:
		return "Settings"
	case KindIssueDetail:
		return "IssueDetail"
	case KindMilestoneDetail:
		return "MilestoneDetail"
	case KindUserProfile:
		return "UserProfile"
	default:
		return "Unknown"
	}
}

// Params carries everything a screen needs to know about what it shows.
// Owner is the liveness token of the coordinator that owns the screen; results
// of data loads started by the screen are tagged with it.
type Params struct {
	Owner     *Liveness
	Repo      string
	Number    int
	Login     string
	Milestone int
}

// Screen is a single displayable unit. The core never looks past this interface.
type Screen interface {
	ID() string
	Kind() Kind
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	SetEvents(events Events)
}

// InputCapturer is implemented by screens that temporarily own every key
// press (text input, list filtering).
type InputCapturer interface {
	Capturing() bool
}

// Factory builds ready-to-display screens with their dependencies injected.
type Factory interface {
	MakeScreen(kind Kind, params Params) (Screen, error)
}

// ConstructionError is returned by a Factory that cannot satisfy a screen's
// dependencies.
type ConstructionError struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot construct %s screen: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot construct %s screen: %s", e.Kind, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
