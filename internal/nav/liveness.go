package nav

import "sync/atomic"

// Liveness is a non-owning handle on a coordinator's lifetime. Async work
// keeps the token instead of the coordinator and checks Alive before it
// touches anything.
type Liveness struct {
	released atomic.Bool
}

// NewLiveness returns a token that is alive until Release is called.
func NewLiveness() *Liveness {
	return &Liveness{}
}

// Alive reports whether the owner is still part of the tree. A nil token is
// never alive.
func (l *Liveness) Alive() bool {
	return l != nil && !l.released.Load()
}

// Release marks the owner as gone. Safe to call more than once.
func (l *Liveness) Release() {
	if l != nil {
		l.released.Store(true)
	}
}

// LoadedMsg carries the result of a data load back onto the event loop.
type LoadedMsg struct {
	ScreenID string
	Owner    *Liveness
	Resource string
	Value    any
	Err      error
}
