package coordinator

import (
	"errors"
	"testing"

	"gitrack/internal/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, session *fakeSession) (*Root, *fakeFactory) {
	t.Helper()
	factory := newFakeFactory()
	root, err := NewRoot(Options{Session: session, Factory: factory})
	require.NoError(t, err)
	return root, factory
}

func TestNewRoot_RequiresCollaborators(t *testing.T) {
	_, err := NewRoot(Options{Factory: newFakeFactory()})
	assert.Error(t, err)
	_, err = NewRoot(Options{Session: &fakeSession{}})
	assert.Error(t, err)
}

func TestRoot_StartDecisionTable(t *testing.T) {
	tests := []struct {
		name      string
		session   fakeSession
		wantStage Stage
		wantKind  nav.Kind
	}{
		{
			name:      "no credential",
			session:   fakeSession{},
			wantStage: StageAuth,
			wantKind:  nav.KindLogin,
		},
		{
			name:      "no credential but a remembered target",
			session:   fakeSession{target: "octo/hello"},
			wantStage: StageAuth,
			wantKind:  nav.KindLogin,
		},
		{
			name:      "credential without target",
			session:   fakeSession{credential: true},
			wantStage: StageSelection,
			wantKind:  nav.KindRepoPicker,
		},
		{
			name:      "credential and target",
			session:   fakeSession{credential: true, target: "octo/hello"},
			wantStage: StageMain,
			wantKind:  nav.KindIssueList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := tt.session
			root, factory := newTestRoot(t, &session)

			require.NoError(t, root.Start())

			assert.Equal(t, tt.wantStage, root.Stage())
			assert.Equal(t, tt.wantStage, Decide(&session))
			assert.Len(t, root.Children(), 1)
			assert.Equal(t, root.Active(), root.Children()[0])
			assert.NotNil(t, factory.last(tt.wantKind))
			assert.Zero(t, CountLeaves(root))
		})
	}
}

func TestRoot_StartTwiceIsGuarded(t *testing.T) {
	root, factory := newTestRoot(t, &fakeSession{})
	require.NoError(t, root.Start())
	active := root.Active()
	built := len(factory.made)

	err := root.Start()

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	assert.Equal(t, active, root.Active())
	assert.Len(t, root.Children(), 1)
	assert.Len(t, factory.made, built, "no screens are built on re-entry")
}

func TestRoot_AuthCompletedActivatesSelection(t *testing.T) {
	session := &fakeSession{}
	root, factory := newTestRoot(t, session)
	require.NoError(t, root.Start())

	auth := root.Active().(*Flow)
	login := factory.last(nav.KindLogin)
	authToken := login.params.Owner

	session.credential = true
	login.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionAuthenticated, Value: "octocat"})

	assert.Equal(t, StageSelection, root.Stage())
	require.Len(t, root.Children(), 1)
	selection, ok := root.Children()[0].(*Flow)
	require.True(t, ok)
	assert.Equal(t, nav.KindRepoPicker, selection.Kind())
	assert.NotEqual(t, auth.ID(), selection.ID())

	// Nothing from the discarded subtree stays reachable.
	assert.False(t, authToken.Alive())
	_, mounted := root.Navigator().Find(login.ID())
	assert.False(t, mounted)
	require.Len(t, root.Navigator().Contexts(), 1)
	assert.Equal(t, "Select repository", root.Navigator().Active().Name())

	// A late duplicate confirmation from the dead login screen changes nothing.
	login.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionAuthenticated})
	assert.Equal(t, selection, root.Active())
}

func TestRoot_AuthCompletedWithoutCredentialStays(t *testing.T) {
	session := &fakeSession{}
	root, factory := newTestRoot(t, session)
	require.NoError(t, root.Start())
	login := factory.last(nav.KindLogin)

	login.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionAuthenticated})
	assert.Equal(t, StageAuth, root.Stage())

	session.credential = true
	login.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionAuthenticated, Value: "octocat"})
	assert.Equal(t, StageSelection, root.Stage())
}

func TestRoot_SelectionCompletedWithoutTargetStays(t *testing.T) {
	session := &fakeSession{credential: true}
	root, factory := newTestRoot(t, session)
	require.NoError(t, root.Start())
	picker := factory.last(nav.KindRepoPicker)

	picker.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionTargetSelected})
	assert.Equal(t, StageSelection, root.Stage())

	session.target = "octo/hello"
	picker.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionTargetSelected, Value: "octo/hello"})
	assert.Equal(t, StageMain, root.Stage())
}

func TestRoot_DiscardedFlowEventsAreIgnored(t *testing.T) {
	session := &fakeSession{credential: true}
	root, factory := newTestRoot(t, session)
	require.NoError(t, root.Start())
	picker := factory.last(nav.KindRepoPicker)

	session.target = "octo/hello"
	picker.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionTargetSelected, Value: "octo/hello"})
	require.Equal(t, StageMain, root.Stage())
	main := root.Active()

	picker.events.LogoutRequested()
	picker.events.ActionConfirmed(nav.Confirmation{Action: nav.ActionTargetSelected, Value: "octo/hello"})

	assert.Equal(t, StageMain, root.Stage())
	assert.Same(t, main, root.Active())
	assert.Zero(t, session.cleared)
	assert.True(t, session.credential)
}

func TestRoot_LogoutKeepsFlowWhenClearFails(t *testing.T) {
	session := &fakeSession{credential: true, target: "octo/hello", clearErr: errors.New("read-only session file")}
	root, factory := newTestRoot(t, session)
	require.NoError(t, root.Start())
	main := root.Active()

	factory.last(nav.KindSettings).events.LogoutRequested()

	assert.Equal(t, StageMain, root.Stage())
	assert.Same(t, main, root.Active())
	assert.True(t, session.credential)
	assert.Len(t, root.Navigator().Contexts(), 4)
}

func TestRoot_FinishedLeafCannotLogOut(t *testing.T) {
	session := &fakeSession{credential: true, target: "octo/hello"}
	root, factory := newTestRoot(t, session)
	require.NoError(t, root.Start())

	factory.last(nav.KindIssueList).events.ItemSelected(nav.IssueRef{Number: 1})
	detail := factory.last(nav.KindIssueDetail)
	detail.events.BackRequested()
	require.Zero(t, CountLeaves(root))

	detail.events.LogoutRequested()

	assert.Equal(t, StageMain, root.Stage())
	assert.True(t, session.credential)
}

func TestRoot_SelectionScenario(t *testing.T) {
	session := &fakeSession{credential: true}
	root, factory := newTestRoot(t, session)
	require.NoError(t, root.Start())

	assert.Equal(t, StageSelection, root.Stage())
	assert.Zero(t, CountLeaves(root))

	session.target = "octo/hello"
	factory.last(nav.KindRepoPicker).events.ActionConfirmed(nav.Confirmation{Action: nav.ActionTargetSelected, Value: "octo/hello"})

	assert.Equal(t, StageMain, root.Stage())
	require.Len(t, root.Children(), 1)
	main, ok := root.Active().(*Tabs)
	require.True(t, ok)
	assert.Equal(t, "octo/hello", main.Repo())
	assert.Len(t, main.Tabs(), 4)
	assert.Len(t, main.Children(), 4)
	assert.Zero(t, CountLeaves(root))
	assert.Len(t, root.Navigator().Contexts(), 4)
	assert.Equal(t, "octo/hello", factory.last(nav.KindSettings).params.Repo)
}

func TestRoot_LogoutFromNestedLeaf(t *testing.T) {
	session := &fakeSession{credential: true, target: "octo/hello"}
	root, factory := newTestRoot(t, session)
	require.NoError(t, root.Start())

	main := root.Active().(*Tabs)
	issues := main.Tabs()[0]

	// tab -> leaf -> leaf, plus a leaf on another tab.
	factory.last(nav.KindIssueList).events.ItemSelected(nav.IssueRef{Number: 1})
	factory.last(nav.KindIssueDetail).events.ItemSelected(nav.IssueRef{Number: 2})
	factory.last(nav.KindMilestoneList).events.ItemSelected(nav.MilestoneRef{Number: 4})
	require.Equal(t, 3, CountLeaves(root))

	var leaves []*Leaf
	Walk(main, func(c Coordinator, _ int) {
		if l, ok := c.(*Leaf); ok {
			leaves = append(leaves, l)
		}
	})
	deepest := factory.last(nav.KindIssueDetail)
	assert.Equal(t, 2, deepest.params.Number)

	deepest.events.LogoutRequested()

	assert.Equal(t, StageAuth, root.Stage())
	require.Len(t, root.Children(), 1)
	auth, ok := root.Children()[0].(*Flow)
	require.True(t, ok)
	assert.Equal(t, nav.KindLogin, auth.Kind())
	assert.Equal(t, 1, session.cleared)
	assert.False(t, session.credential)
	assert.True(t, session.HasSelectedTarget(), "logout keeps the remembered repository")

	for _, l := range leaves {
		assert.Equal(t, StateFinished, l.State())
		assert.False(t, l.Liveness().Alive())
	}
	assert.Empty(t, issues.Children())
	assert.Empty(t, main.Children())
	assert.Len(t, root.Navigator().Contexts(), 1)
}

func TestRoot_SwitchTargetAndTargetChanged(t *testing.T) {
	session := &fakeSession{credential: true, target: "octo/hello"}
	root, factory := newTestRoot(t, session)
	require.NoError(t, root.Start())
	first := root.Active()

	// Picking another repository on the profile tab rebuilds the main flow.
	session.target = "octo/world"
	factory.last(nav.KindProfile).events.ActionConfirmed(nav.Confirmation{Action: nav.ActionTargetSelected, Value: "octo/world"})

	require.Equal(t, StageMain, root.Stage())
	assert.NotEqual(t, first.ID(), root.Active().ID())
	assert.Equal(t, "octo/world", root.Active().(*Tabs).Repo())

	factory.last(nav.KindSettings).events.ActionConfirmed(nav.Confirmation{Action: nav.ActionSwitchTarget})
	assert.Equal(t, StageSelection, root.Stage())
	assert.Len(t, root.Children(), 1)
}

func TestRoot_ConstructionFailureOnStart(t *testing.T) {
	root, factory := newTestRoot(t, &fakeSession{credential: true, target: "octo/hello"})
	factory.fail[nav.KindSettings] = true

	err := root.Start()

	var cerr *nav.ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, nav.KindSettings, cerr.Kind)
	assert.Empty(t, root.Children())
	assert.Equal(t, StageNone, root.Stage())
	assert.Empty(t, root.Navigator().Contexts(), "tabs built before the failure are torn down")
}

func TestRoot_ConstructionFailureOnTransitionIsReported(t *testing.T) {
	session := &fakeSession{}
	factory := newFakeFactory()
	var fatal error
	root, err := NewRoot(Options{Session: session, Factory: factory, OnFatal: func(err error) { fatal = err }})
	require.NoError(t, err)
	require.NoError(t, root.Start())

	factory.fail[nav.KindRepoPicker] = true
	session.credential = true
	factory.last(nav.KindLogin).events.ActionConfirmed(nav.Confirmation{Action: nav.ActionAuthenticated})

	var cerr *nav.ConstructionError
	require.ErrorAs(t, fatal, &cerr)
	assert.Equal(t, nav.KindRepoPicker, cerr.Kind)
	assert.Nil(t, root.Active())
	assert.Empty(t, root.Children())
}

func TestWalk_VisitsParentsFirst(t *testing.T) {
	root, factory := newTestRoot(t, &fakeSession{credential: true, target: "octo/hello"})
	require.NoError(t, root.Start())
	factory.last(nav.KindIssueList).events.ItemSelected(nav.IssueRef{Number: 1})

	var depths []int
	Walk(root, func(_ Coordinator, depth int) {
		depths = append(depths, depth)
	})

	// root, main, four tabs, one leaf under the first tab.
	assert.Equal(t, []int{0, 1, 2, 3, 2, 2, 2}, depths)
}
