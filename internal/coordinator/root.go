package coordinator

import (
	"errors"
	"fmt"

	"gitrack/internal/nav"
	"gitrack/pkg/logging"
)

// SessionState is the persisted state the root decides from.
type SessionState interface {
	HasCredential() bool
	HasSelectedTarget() bool
	SelectedTarget() string
	ClearCredential() error
}

// Stage is the top-level flow the root is showing.
type Stage int

const (
	StageNone Stage = iota
	StageAuth
	StageSelection
	StageMain
)

// String provides a human-readable representation of the Stage.
func (s Stage) String() string {
	switch s {
	case StageAuth:
		return "Auth"
	case StageSelection:
		return "Selection"
	case StageMain:
		return "Main"
	default:
		return "None"
	}
}

// Decide is the startup decision table.
func Decide(s SessionState) Stage {
	switch {
	case !s.HasCredential():
		return StageAuth
	case !s.HasSelectedTarget():
		return StageSelection
	default:
		return StageMain
	}
}

// flowNode is a top-level flow the root can discard.
type flowNode interface {
	Coordinator
	Teardown()
}

// Options configures a Root.
type Options struct {
	Session   SessionState
	Factory   nav.Factory
	Navigator *nav.Navigator
	// Tabs overrides DefaultTabs for the main flow.
	Tabs []TabSpec
	// OnFatal receives construction failures from transitions that happen in
	// response to screen events, where there is no caller to return to.
	OnFatal func(error)
}

// Root is the single entry point of the tree. It owns at most one flow.
type Root struct {
	node
	env     *env
	session SessionState
	tabs    []TabSpec
	onFatal func(error)

	started bool
	stage   Stage
	active  flowNode
}

// NewRoot returns a root that has not been started.
func NewRoot(opts Options) (*Root, error) {
	if opts.Session == nil {
		return nil, errors.New("root coordinator needs a session state")
	}
	if opts.Factory == nil {
		return nil, errors.New("root coordinator needs a screen factory")
	}
	navigator := opts.Navigator
	if navigator == nil {
		navigator = nav.NewNavigator()
	}
	tabs := opts.Tabs
	if len(tabs) == 0 {
		tabs = DefaultTabs
	}
	return &Root{
		node:    newNode(),
		env:     &env{factory: opts.Factory, navigator: navigator},
		session: opts.Session,
		tabs:    tabs,
		onFatal: opts.OnFatal,
	}, nil
}

// Navigator returns the navigator the tree presents on.
func (r *Root) Navigator() *nav.Navigator {
	return r.env.navigator
}

// Stage returns the active top-level flow.
func (r *Root) Stage() Stage {
	return r.stage
}

// Active returns the active flow, or nil.
func (r *Root) Active() Coordinator {
	if r.active == nil {
		return nil
	}
	return r.active
}

// Start reads the session once and activates the matching flow.
func (r *Root) Start() error {
	if r.started {
		logging.Warn(subsystem, "Start called twice on root; ignoring")
		return ErrAlreadyStarted
	}
	r.started = true
	stage := Decide(r.session)
	logging.Info(subsystem, "Starting in %s flow", stage)
	return r.activate(stage)
}

// activate discards the current subtree and starts the flow for stage as the
// root's only child.
func (r *Root) activate(stage Stage) error {
	r.discard()

	var next flowNode
	switch stage {
	case StageAuth:
		next = newAuthFlow(r.env, r.authenticated)
	case StageSelection:
		next = newSelectionFlow(r.env, r.selected, r.handleSignal)
	case StageMain:
		next = newTabs(r.env, r.tabs, r.session.SelectedTarget(), r.handleSignal)
	default:
		return fmt.Errorf("unknown stage %d", stage)
	}

	r.adopt(next)
	if err := next.Start(); err != nil {
		next.Teardown()
		r.release(next)
		return fmt.Errorf("activating %s flow: %w", stage, err)
	}
	r.active = next
	r.stage = stage
	return nil
}

// discard tears the active subtree down and drops it.
func (r *Root) discard() {
	if r.active == nil {
		return
	}
	old := r.active
	r.active = nil
	r.stage = StageNone
	old.Teardown()
	r.release(old)
}

// transition is activate for event-driven changes: failures go to onFatal.
func (r *Root) transition(stage Stage) {
	if err := r.activate(stage); err != nil {
		logging.Error(subsystem, err, "Transition to %s failed", stage)
		if r.onFatal != nil {
			r.onFatal(err)
		}
	}
}

// authenticated leaves the auth flow in place, still waiting for a sign-in,
// when no credential was actually stored.
func (r *Root) authenticated() bool {
	if !r.session.HasCredential() {
		logging.Warn(subsystem, "Sign-in reported success but no credential is stored")
		return false
	}
	logging.Info(subsystem, "Signed in")
	r.transition(StageSelection)
	return true
}

func (r *Root) selected() bool {
	if !r.session.HasSelectedTarget() {
		logging.Warn(subsystem, "Selection reported success but no repository is stored")
		return false
	}
	logging.Info(subsystem, "Repository %s selected", r.session.SelectedTarget())
	r.transition(StageMain)
	return true
}

// Logout clears the credential, discards the tree and shows sign-in again.
// If the credential cannot be cleared the current flow stays on screen.
func (r *Root) Logout() {
	if err := r.session.ClearCredential(); err != nil {
		logging.Error(subsystem, err, "Sign out failed, staying in %s flow", r.stage)
		return
	}
	logging.Info(subsystem, "Signed out")
	r.transition(StageAuth)
}

func (r *Root) handleSignal(sig Signal) {
	switch sig {
	case SignalLogout:
		r.Logout()
	case SignalSwitchTarget:
		r.transition(StageSelection)
	case SignalTargetChanged:
		if !r.session.HasSelectedTarget() {
			logging.Warn(subsystem, "Repository change reported but none is stored")
			return
		}
		logging.Info(subsystem, "Switching to %s", r.session.SelectedTarget())
		r.transition(StageMain)
	}
}
