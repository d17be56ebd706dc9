package coordinator

import (
	"fmt"

	"gitrack/internal/nav"
	"gitrack/pkg/logging"
)

// Flow owns one navigation context: a root screen plus the leaves spawned
// from it. Auth, selection and every tab of the main flow are Flows.
type Flow struct {
	node
	env    *env
	name   string
	kind   nav.Kind
	params nav.Params
	stack  *nav.Stack
	root   nav.Screen

	started bool
	done    bool

	// completeOn is the confirmation that ends the flow. onComplete reports
	// whether it accepted it; once it has, it is not called again.
	completeOn nav.Action
	onComplete func() bool
	emit       func(Signal)
}

func newFlow(e *env, name string, kind nav.Kind, params nav.Params, emit func(Signal)) *Flow {
	return &Flow{
		node:   newNode(),
		env:    e,
		name:   name,
		kind:   kind,
		params: params,
		emit:   emit,
	}
}

// newAuthFlow shows the login screen and calls onAuthenticated once the
// screen confirms a stored credential.
func newAuthFlow(e *env, onAuthenticated func() bool) *Flow {
	f := newFlow(e, "Sign in", nav.KindLogin, nav.Params{}, nil)
	f.completeOn = nav.ActionAuthenticated
	f.onComplete = onAuthenticated
	return f
}

// newSelectionFlow shows the repository picker and calls onSelected once a
// target repository has been stored. Logging out from the picker bubbles up.
func newSelectionFlow(e *env, onSelected func() bool, emit func(Signal)) *Flow {
	f := newFlow(e, "Select repository", nav.KindRepoPicker, nav.Params{}, emit)
	f.completeOn = nav.ActionTargetSelected
	f.onComplete = onSelected
	return f
}

// Name returns the context name shown in the tab bar.
func (f *Flow) Name() string {
	return f.name
}

// Kind returns the kind of the flow's root screen.
func (f *Flow) Kind() nav.Kind {
	return f.kind
}

// Stack returns the flow's presentation stack, nil before Start.
func (f *Flow) Stack() *nav.Stack {
	return f.stack
}

// Start opens the flow's context and shows its root screen.
func (f *Flow) Start() error {
	if f.started {
		logging.Warn(subsystem, "Start called twice on flow %q", f.name)
		return ErrAlreadyStarted
	}

	params := f.params
	params.Owner = f.live
	screen, err := f.env.factory.MakeScreen(f.kind, params)
	if err != nil {
		return fmt.Errorf("starting flow %q: %w", f.name, err)
	}
	f.started = true
	f.root = screen
	f.stack = f.env.navigator.Open(f.name)

	screen.SetEvents(nav.Events{
		OnItemSelected:    f.handleItemSelected,
		OnActionConfirmed: f.handleActionConfirmed,
		OnLogoutRequested: func() { f.signal(SignalLogout) },
	})
	f.stack.Push(screen, nil)
	logging.Debug(subsystem, "Flow %q started with %s", f.name, f.kind)
	return nil
}

// SpawnLeaf opens a leaf on top of the flow's root screen.
func (f *Flow) SpawnLeaf(kind nav.Kind, params nav.Params) (*Leaf, error) {
	if !f.started || f.done {
		return nil, errInactive
	}
	return f.spawnLeaf(f.env, f.stack, kind, params, presentationFor(kind), f.emit)
}

// Teardown finishes every leaf deepest first, removes the root screen and
// closes the context. Nothing the flow owned stays on screen afterwards.
func (f *Flow) Teardown() {
	if f.done {
		return
	}
	f.done = true
	f.live.Release()
	f.finishChildren()
	if f.stack != nil {
		f.stack.Pop(f.root)
		f.env.navigator.Close(f.stack)
	}
	logging.Debug(subsystem, "Flow %q torn down", f.name)
}

func (f *Flow) handleItemSelected(item nav.Item) {
	kind, params, ok := route(item, f.params)
	if !ok {
		logging.Debug(subsystem, "Flow %q ignored selection %T", f.name, item)
		return
	}
	if _, err := f.SpawnLeaf(kind, params); err != nil {
		logging.Error(subsystem, err, "Could not open %s in %q", kind, f.name)
	}
}

func (f *Flow) handleActionConfirmed(payload nav.Confirmation) {
	if f.done {
		return
	}
	if f.onComplete != nil && payload.Action == f.completeOn {
		complete := f.onComplete
		f.onComplete = nil
		if !complete() && !f.done {
			f.onComplete = complete
		}
		return
	}
	if sig, ok := signalFor(payload); ok {
		f.signal(sig)
		return
	}
	logging.Info(subsystem, "%s: %s %s", f.name, payload.Action, payload.Value)
}

func (f *Flow) signal(sig Signal) {
	if f.done {
		logging.Debug(subsystem, "Flow %q is gone, dropping %s", f.name, sig)
		return
	}
	if f.emit != nil {
		f.emit(sig)
	}
}
