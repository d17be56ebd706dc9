package coordinator

import (
	"gitrack/internal/nav"
	"gitrack/pkg/logging"
)

// State is the lifecycle position of a Leaf.
type State int

const (
	StateCreated State = iota
	StateActive
	StateFinishing
	StateFinished
)

// String provides a human-readable representation of the State.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateActive:
		return "Active"
	case StateFinishing:
		return "Finishing"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Leaf owns exactly one pushed or presented screen. It can spawn further
// leaves from its screen, which makes a chain rather than a flat list.
type Leaf struct {
	node
	env    *env
	stack  *nav.Stack
	kind   nav.Kind
	params nav.Params
	mode   nav.Presentation
	screen nav.Screen
	state  State

	onFinished func(*Leaf)
	emit       func(Signal)
}

// Kind returns the kind of screen this leaf shows.
func (l *Leaf) Kind() nav.Kind {
	return l.kind
}

// State returns the current lifecycle state.
func (l *Leaf) State() State {
	return l.state
}

// Screen returns the screen owned by this leaf.
func (l *Leaf) Screen() nav.Screen {
	return l.screen
}

// Start wires the screen's events and puts it on the stack.
func (l *Leaf) Start() error {
	if l.state != StateCreated {
		logging.Warn(subsystem, "Start called on leaf %s in state %s", short(l.id), l.state)
		return ErrAlreadyStarted
	}

	l.screen.SetEvents(nav.Events{
		OnItemSelected:    l.handleItemSelected,
		OnBackRequested:   l.Finish,
		OnActionConfirmed: l.handleActionConfirmed,
		OnLogoutRequested: func() { l.signal(SignalLogout) },
	})

	// The stack reports its own pops back through Finish; the latch absorbs
	// the second call when Finish was what popped the screen.
	if l.mode == nav.PresentModal {
		l.stack.Present(l.screen, l.Finish)
	} else {
		l.stack.Push(l.screen, l.Finish)
	}
	l.state = StateActive
	return nil
}

// Finish tears the leaf down: its own chain first, then its screen, then the
// on-finished callback. Only the first call does anything.
func (l *Leaf) Finish() {
	if l.state != StateActive {
		return
	}
	l.state = StateFinishing
	l.live.Release()

	l.finishChildren()

	if l.mode == nav.PresentModal {
		l.stack.Dismiss(l.screen)
	} else {
		l.stack.Pop(l.screen)
	}

	if cb := l.onFinished; cb != nil {
		l.onFinished = nil
		cb(l)
	}
	l.state = StateFinished
}

// SpawnLeaf opens a further screen from this leaf's screen.
func (l *Leaf) SpawnLeaf(kind nav.Kind, params nav.Params) (*Leaf, error) {
	if l.state != StateActive {
		return nil, errInactive
	}
	return l.spawnLeaf(l.env, l.stack, kind, params, presentationFor(kind), l.emit)
}

func (l *Leaf) handleItemSelected(item nav.Item) {
	kind, params, ok := route(item, l.params)
	if !ok {
		logging.Debug(subsystem, "Leaf %s ignored selection %T", l.kind, item)
		return
	}
	if _, err := l.SpawnLeaf(kind, params); err != nil {
		logging.Error(subsystem, err, "Could not open %s from %s", kind, l.kind)
	}
}

func (l *Leaf) handleActionConfirmed(payload nav.Confirmation) {
	if sig, ok := signalFor(payload); ok {
		l.signal(sig)
		return
	}
	logging.Info(subsystem, "%s: %s %s", l.screen.Title(), payload.Action, payload.Value)
}

func (l *Leaf) signal(sig Signal) {
	if l.state != StateActive {
		logging.Debug(subsystem, "Leaf %s is %s, dropping %s", short(l.id), l.state, sig)
		return
	}
	if l.emit != nil {
		l.emit(sig)
	}
}
