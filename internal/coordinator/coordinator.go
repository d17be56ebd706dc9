// Package coordinator implements the navigation tree: a root that picks the
// top-level flow, flows that own a root screen per navigation context, and
// leaves that own a single pushed or presented screen.
//
// Ownership only points down. A parent keeps its children in an ordered set;
// a child talks upward through the one-shot callback and the signal closure
// it was handed at spawn time, never through a stored parent pointer.
// All methods must be called from the event loop.
package coordinator

import (
	"errors"
	"fmt"

	"gitrack/internal/nav"
	"gitrack/pkg/logging"

	"github.com/google/uuid"
)

const subsystem = "Coordinator"

// ErrAlreadyStarted is returned when Start is called on a coordinator that
// has already been started. The tree is left untouched.
var ErrAlreadyStarted = errors.New("coordinator already started")

// Coordinator is the capability every node in the tree shares.
type Coordinator interface {
	ID() string
	Start() error
	Children() []Coordinator
}

// Signal is a domain event that bubbles from a screen up to the root.
type Signal int

const (
	// SignalLogout asks the root to drop the session and show the auth flow.
	SignalLogout Signal = iota
	// SignalSwitchTarget asks the root to show the repository picker.
	SignalSwitchTarget
	// SignalTargetChanged tells the root a new repository was stored and the
	// main flow should be rebuilt for it.
	SignalTargetChanged
)

// String provides a human-readable representation of the Signal.
func (s Signal) String() string {
	switch s {
	case SignalLogout:
		return "logout"
	case SignalSwitchTarget:
		return "switch-target"
	case SignalTargetChanged:
		return "target-changed"
	default:
		return "unknown"
	}
}

// node holds identity, liveness and the owned child set.
type node struct {
	id       string
	live     *nav.Liveness
	children []Coordinator
}

func newNode() node {
	return node{id: uuid.NewString(), live: nav.NewLiveness()}
}

func (n *node) ID() string {
	return n.id
}

// Liveness returns the token async work should hold instead of the coordinator.
func (n *node) Liveness() *nav.Liveness {
	return n.live
}

func (n *node) Children() []Coordinator {
	out := make([]Coordinator, len(n.children))
	copy(out, n.children)
	return out
}

func (n *node) adopt(c Coordinator) {
	for _, existing := range n.children {
		if existing.ID() == c.ID() {
			return
		}
	}
	n.children = append(n.children, c)
}

// release drops c by identity. It reports whether c was present, so a second
// call for the same child is harmless.
func (n *node) release(c Coordinator) bool {
	for i, existing := range n.children {
		if existing.ID() == c.ID() {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// finishChildren finishes owned leaves newest first. Each leaf finishes its own
// chain before itself, so the deepest screen always leaves the stack first.
func (n *node) finishChildren() {
	for i := len(n.children) - 1; i >= 0; i-- {
		if i >= len(n.children) {
			continue
		}
		if leaf, ok := n.children[i].(*Leaf); ok {
			leaf.Finish()
		}
	}
}

// env is what every coordinator in one tree shares.
type env struct {
	factory   nav.Factory
	navigator *nav.Navigator
}

// spawnLeaf is the only way a leaf enters the tree. The screen is built first,
// so a construction failure leaves the child set untouched.
func (n *node) spawnLeaf(e *env, stack *nav.Stack, kind nav.Kind, params nav.Params, mode nav.Presentation, emit func(Signal)) (*Leaf, error) {
	leaf := &Leaf{
		node:  newNode(),
		env:   e,
		stack: stack,
		kind:  kind,
		mode:  mode,
		emit:  emit,
	}
	params.Owner = leaf.live
	leaf.params = params

	screen, err := e.factory.MakeScreen(kind, params)
	if err != nil {
		leaf.live.Release()
		return nil, fmt.Errorf("spawning %s: %w", kind, err)
	}
	leaf.screen = screen
	leaf.onFinished = func(done *Leaf) {
		if n.release(done) {
			logging.Debug(subsystem, "Leaf %s (%s) removed from %s", done.kind, short(done.id), short(n.id))
		}
	}

	n.adopt(leaf)
	if err := leaf.Start(); err != nil {
		n.release(leaf)
		return nil, err
	}
	logging.Debug(subsystem, "Spawned leaf %s (%s) under %s", kind, short(leaf.id), short(n.id))
	return leaf, nil
}

// Walk visits c and its descendants depth-first, parents before children.
func Walk(c Coordinator, fn func(c Coordinator, depth int)) {
	walk(c, 0, fn)
}

func walk(c Coordinator, depth int, fn func(Coordinator, int)) {
	fn(c, depth)
	for _, child := range c.Children() {
		walk(child, depth+1, fn)
	}
}

// CountLeaves returns how many leaves hang below c.
func CountLeaves(c Coordinator) int {
	count := 0
	Walk(c, func(n Coordinator, _ int) {
		if _, ok := n.(*Leaf); ok {
			count++
		}
	})
	return count
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
