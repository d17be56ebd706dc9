package nav

// Navigator holds every navigation context currently on screen: one for the
// auth and selection flows, one per tab in the main flow. Exactly one of them
// is active at a time.
type Navigator struct {
	contexts []*Stack
	active   int
	pending  []Screen
}

// NewNavigator returns an empty navigator.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// Open adds a new context and returns its stack. The first context opened
// becomes the active one.
func (n *Navigator) Open(name string) *Stack {
	s := &Stack{name: name, owner: n}
	n.contexts = append(n.contexts, s)
	if len(n.contexts) == 1 {
		n.active = 0
	}
	return s
}

// Close removes a context. Screens still on it are dropped without their
// pop callbacks; owners are expected to have popped them already.
func (n *Navigator) Close(s *Stack) {
	for i, c := range n.contexts {
		if c != s {
			continue
		}
		n.contexts = append(n.contexts[:i], n.contexts[i+1:]...)
		switch {
		case len(n.contexts) == 0:
			n.active = 0
		case n.active >= len(n.contexts):
			n.active = len(n.contexts) - 1
		case i < n.active:
			n.active--
		}
		s.entries = nil
		s.owner = nil
		n.dropPending()
		return
	}
}

func (n *Navigator) dropPending() {
	kept := n.pending[:0]
	for _, p := range n.pending {
		if !n.mounted(p.ID()) {
			continue
		}
		kept = append(kept, p)
	}
	n.pending = kept
}

// Active returns the stack of the active context, or nil when none is open.
func (n *Navigator) Active() *Stack {
	if len(n.contexts) == 0 {
		return nil
	}
	return n.contexts[n.active]
}

// ActiveIndex returns the index of the active context.
func (n *Navigator) ActiveIndex() int {
	return n.active
}

// Select activates the context at index i.
func (n *Navigator) Select(i int) bool {
	if i < 0 || i >= len(n.contexts) {
		return false
	}
	n.active = i
	return true
}

// Cycle moves the active context by delta, wrapping around.
func (n *Navigator) Cycle(delta int) {
	if len(n.contexts) == 0 {
		return
	}
	n.active = ((n.active+delta)%len(n.contexts) + len(n.contexts)) % len(n.contexts)
}

// Contexts returns the open contexts in tab order.
func (n *Navigator) Contexts() []*Stack {
	out := make([]*Stack, len(n.contexts))
	copy(out, n.contexts)
	return out
}

// Find looks up a mounted screen by ID across every context.
func (n *Navigator) Find(id string) (Screen, bool) {
	for _, c := range n.contexts {
		for _, e := range c.entries {
			if e.screen.ID() == id {
				return e.screen, true
			}
		}
	}
	return nil, false
}

func (n *Navigator) mounted(id string) bool {
	_, ok := n.Find(id)
	return ok
}

// Each calls fn for every mounted screen.
func (n *Navigator) Each(fn func(Screen)) {
	for _, c := range n.contexts {
		for _, e := range c.entries {
			fn(e.screen)
		}
	}
}

// Drain returns screens mounted since the last call that are still on a
// stack. The event loop uses it to size them and run their Init.
func (n *Navigator) Drain() []Screen {
	var out []Screen
	for _, p := range n.pending {
		if n.mounted(p.ID()) {
			out = append(out, p)
		}
	}
	n.pending = nil
	return out
}
