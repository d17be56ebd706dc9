package nav

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScreen struct {
	id string
}

func (s *stubScreen) ID() string                 { return s.id }
func (s *stubScreen) Kind() Kind                 { return KindUnknown }
func (s *stubScreen) Title() string              { return s.id }
func (s *stubScreen) Init() tea.Cmd              { return nil }
func (s *stubScreen) Update(msg tea.Msg) tea.Cmd { return nil }
func (s *stubScreen) View() string               { return s.id }
func (s *stubScreen) SetSize(width, height int)  {}
func (s *stubScreen) SetEvents(events Events)    {}

func TestStack_PushPopByIdentity(t *testing.T) {
	n := NewNavigator()
	s := n.Open("issues")

	root := &stubScreen{id: "root"}
	a := &stubScreen{id: "a"}
	b := &stubScreen{id: "b"}

	popped := map[string]int{}
	s.Push(root, nil)
	s.Push(a, func() { popped["a"]++ })
	s.Present(b, func() { popped["b"]++ })

	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "b", top.ID())
	assert.True(t, s.TopIsModal())

	// Removing a screen below the top leaves the others in place.
	assert.True(t, s.Pop(a))
	assert.Equal(t, 1, popped["a"])
	assert.Equal(t, []Screen{root, b}, s.Screens())

	assert.False(t, s.Pop(a), "second pop of the same screen is a no-op")
	assert.Equal(t, 1, popped["a"])

	assert.True(t, s.Dismiss(b))
	assert.Equal(t, 1, popped["b"])
	assert.Equal(t, 1, s.Len())
}

func TestStack_PopTopKeepsRoot(t *testing.T) {
	n := NewNavigator()
	s := n.Open("settings")
	s.Push(&stubScreen{id: "root"}, nil)

	assert.False(t, s.PopTop())
	assert.Equal(t, 1, s.Len())

	fired := false
	s.Push(&stubScreen{id: "leaf"}, func() { fired = true })
	assert.True(t, s.PopTop())
	assert.True(t, fired)
}

func TestNavigator_ContextsAndSelection(t *testing.T) {
	n := NewNavigator()
	assert.Nil(t, n.Active())

	tabs := []*Stack{n.Open("one"), n.Open("two"), n.Open("three")}
	assert.Equal(t, tabs[0], n.Active())

	assert.True(t, n.Select(2))
	assert.False(t, n.Select(3))
	assert.Equal(t, tabs[2], n.Active())

	n.Cycle(1)
	assert.Equal(t, tabs[0], n.Active())
	n.Cycle(-1)
	assert.Equal(t, tabs[2], n.Active())

	n.Close(tabs[2])
	assert.Equal(t, tabs[1], n.Active())
	n.Close(tabs[0])
	assert.Equal(t, tabs[1], n.Active())
	assert.Len(t, n.Contexts(), 1)
}

func TestNavigator_FindAndDrain(t *testing.T) {
	n := NewNavigator()
	a := n.Open("a")
	b := n.Open("b")

	sa := &stubScreen{id: "sa"}
	sb := &stubScreen{id: "sb"}
	a.Push(sa, nil)
	b.Push(sb, nil)

	found, ok := n.Find("sb")
	require.True(t, ok)
	assert.Equal(t, sb, found)

	n.Close(b)
	_, ok = n.Find("sb")
	assert.False(t, ok)

	drained := n.Drain()
	assert.Equal(t, []Screen{sa}, drained, "screens of a closed context are not drained")
	assert.Empty(t, n.Drain())
}

func TestLiveness(t *testing.T) {
	var nilToken *Liveness
	assert.False(t, nilToken.Alive())
	nilToken.Release()

	l := NewLiveness()
	assert.True(t, l.Alive())
	l.Release()
	l.Release()
	assert.False(t, l.Alive())
}

func TestConstructionError(t *testing.T) {
	inner := assert.AnError
	err := &ConstructionError{Kind: KindIssueDetail, Reason: "missing data service", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "IssueDetail")
	assert.Contains(t, err.Error(), "missing data service")
}
