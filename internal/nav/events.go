package nav

// Item is something a screen lets the user pick.
type Item interface {
	itemRef()
}

// IssueRef points to an issue in a repository.
type IssueRef struct {
	Repo   string
	Number int
}

// MilestoneRef points to a milestone in a repository.
type MilestoneRef struct {
	Repo   string
	Number int
	Title  string
}

// UserRef points to a GitHub account.
type UserRef struct {
	Login string
}

// RepoRef points to a repository by its "owner/name".
type RepoRef struct {
	FullName string
}

func (IssueRef) itemRef()     {}
func (MilestoneRef) itemRef() {}
func (UserRef) itemRef()      {}
func (RepoRef) itemRef()      {}

// Action names what a screen confirmed.
type Action int

const (
	ActionAuthenticated Action = iota
	ActionTargetSelected
	ActionSwitchTarget
	ActionCopyURL
)

// String provides a human-readable representation of the Action.
func (a Action) String() string {
	switch a {
	case ActionAuthenticated:
		return "authenticated"
	case ActionTargetSelected:
		return "target-selected"
	case ActionSwitchTarget:
		return "switch-target"
	case ActionCopyURL:
		return "copy-url"
	default:
		return "unknown"
	}
}

// Confirmation is the payload of OnActionConfirmed.
type Confirmation struct {
	Action Action
	Value  string
}

// Events is the set of callbacks an owning coordinator installs on a screen.
// Any field may be nil.
type Events struct {
	OnItemSelected    func(item Item)
	OnBackRequested   func()
	OnActionConfirmed func(payload Confirmation)
	OnLogoutRequested func()
}

func (e Events) ItemSelected(item Item) {
	if e.OnItemSelected != nil {
		e.OnItemSelected(item)
	}
}

func (e Events) BackRequested() {
	if e.OnBackRequested != nil {
		e.OnBackRequested()
	}
}

func (e Events) ActionConfirmed(payload Confirmation) {
	if e.OnActionConfirmed != nil {
		e.OnActionConfirmed(payload)
	}
}

func (e Events) LogoutRequested() {
	if e.OnLogoutRequested != nil {
		e.OnLogoutRequested()
	}
}
