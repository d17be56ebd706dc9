package nav

// Presentation says how a screen enters a stack.
type Presentation int

const (
	// PresentPush shows the screen as the next page of the context.
	PresentPush Presentation = iota
	// PresentModal shows the screen on top of the context as an overlay.
	PresentModal
)

type entry struct {
	screen   Screen
	mode     Presentation
	onPopped func()
}

// Stack is the ordered list of visible screens in one navigation context.
// The bottom entry is the context's root screen.
type Stack struct {
	name    string
	entries []entry
	owner   *Navigator
}

// Name returns the context name (a tab label, or the flow name).
func (s *Stack) Name() string {
	return s.name
}

// Push shows screen as the next page. onPopped runs once the screen has left
// the stack, whoever removed it.
func (s *Stack) Push(screen Screen, onPopped func()) {
	s.add(screen, PresentPush, onPopped)
}

// Present shows screen modally on top of the context.
func (s *Stack) Present(screen Screen, onPopped func()) {
	s.add(screen, PresentModal, onPopped)
}

func (s *Stack) add(screen Screen, mode Presentation, onPopped func()) {
	s.entries = append(s.entries, entry{screen: screen, mode: mode, onPopped: onPopped})
	if s.owner != nil {
		s.owner.pending = append(s.owner.pending, screen)
	}
}

// Pop removes screen from the stack by identity. It reports false when the
// screen is not on this stack.
func (s *Stack) Pop(screen Screen) bool {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].screen.ID() != screen.ID() {
			continue
		}
		e := s.entries[i]
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		if e.onPopped != nil {
			e.onPopped()
		}
		return true
	}
	return false
}

// Dismiss removes a modally presented screen.
func (s *Stack) Dismiss(screen Screen) bool {
	return s.Pop(screen)
}

// PopTop is the user-initiated back gesture: it removes the top screen unless
// it is the root of the context.
func (s *Stack) PopTop() bool {
	if len(s.entries) < 2 {
		return false
	}
	return s.Pop(s.entries[len(s.entries)-1].screen)
}

// Top returns the visible screen, if any.
func (s *Stack) Top() (Screen, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1].screen, true
}

// TopIsModal reports whether the visible screen was presented modally.
func (s *Stack) TopIsModal() bool {
	return len(s.entries) > 0 && s.entries[len(s.entries)-1].mode == PresentModal
}

// Screens returns the stack bottom-up.
func (s *Stack) Screens() []Screen {
	out := make([]Screen, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.screen
	}
	return out
}

// Len returns the number of screens on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
