package coordinator

import (
	"testing"

	"gitrack/internal/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedFlow(t *testing.T) (*Flow, *env, *fakeFactory) {
	t.Helper()
	e, f := newTestEnv()
	flow := newFlow(e, "Issues", nav.KindIssueList, nav.Params{Repo: "octo/hello"}, nil)
	require.NoError(t, flow.Start())
	return flow, e, f
}

func TestFlow_ThreeLeavesFinishInAnyOrder(t *testing.T) {
	flow, _, factory := startedFlow(t)
	root := factory.last(nav.KindIssueList)

	// Three different triggers: a direct spawn, an issue picked on the root
	// screen, and a milestone picked on the root screen.
	direct, err := flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Repo: "octo/hello", Number: 1})
	require.NoError(t, err)
	root.events.ItemSelected(nav.IssueRef{Number: 2})
	root.events.ItemSelected(nav.MilestoneRef{Number: 3})

	children := flow.Children()
	require.Len(t, children, 3)
	picked := children[1].(*Leaf)
	milestone := children[2].(*Leaf)
	assert.Equal(t, "octo/hello", picked.params.Repo, "repository falls back to the parent's")
	assert.Equal(t, 2, picked.params.Number)
	assert.Equal(t, nav.KindMilestoneDetail, milestone.Kind())

	picked.Finish()
	assert.Equal(t, []Coordinator{direct, milestone}, flow.Children())

	direct.Finish()
	assert.Equal(t, []Coordinator{milestone}, flow.Children())

	milestone.Finish()
	assert.Empty(t, flow.Children())
	assert.Equal(t, 1, flow.Stack().Len(), "only the flow's root screen is left")
}

func TestLeaf_FinishTwiceFiresCallbackOnce(t *testing.T) {
	flow, _, _ := startedFlow(t)
	leaf, err := flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Number: 7})
	require.NoError(t, err)
	assert.Equal(t, StateActive, leaf.State())

	calls := 0
	inner := leaf.onFinished
	leaf.onFinished = func(l *Leaf) {
		calls++
		inner(l)
	}

	leaf.Finish()
	leaf.Finish()
	// A late back action from the screen goes through the same latch.
	leaf.Screen().(*fakeScreen).events.BackRequested()

	assert.Equal(t, 1, calls)
	assert.Equal(t, StateFinished, leaf.State())
	assert.Empty(t, flow.Children())
}

func TestLeaf_StackPopFinishesLeaf(t *testing.T) {
	flow, _, _ := startedFlow(t)
	leaf, err := flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Number: 7})
	require.NoError(t, err)

	require.True(t, flow.Stack().PopTop())

	assert.Equal(t, StateFinished, leaf.State())
	assert.Empty(t, flow.Children())
	assert.False(t, leaf.Liveness().Alive())
}

func TestLeaf_StartTwice(t *testing.T) {
	flow, _, _ := startedFlow(t)
	leaf, err := flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Number: 7})
	require.NoError(t, err)

	assert.ErrorIs(t, leaf.Start(), ErrAlreadyStarted)
	assert.Equal(t, 2, flow.Stack().Len())
}

func TestLeaf_ChainFinishedLeafFirst(t *testing.T) {
	flow, _, factory := startedFlow(t)
	outer, err := flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Number: 1})
	require.NoError(t, err)

	factory.last(nav.KindIssueDetail).events.ItemSelected(nav.IssueRef{Number: 2})
	require.Len(t, outer.Children(), 1)
	inner := outer.Children()[0].(*Leaf)
	assert.Len(t, flow.Children(), 1, "the chained leaf belongs to the outer leaf, not the flow")
	assert.Equal(t, 3, flow.Stack().Len())

	inner.Finish()
	assert.Empty(t, outer.Children())
	outer.Finish()

	assert.Empty(t, flow.Children())
	assert.Equal(t, 1, flow.Stack().Len())
}

func TestLeaf_FinishingOuterFinishesChainFirst(t *testing.T) {
	flow, _, factory := startedFlow(t)
	outer, err := flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Number: 1})
	require.NoError(t, err)
	factory.last(nav.KindIssueDetail).events.ItemSelected(nav.IssueRef{Number: 2})
	inner := outer.Children()[0].(*Leaf)

	var order []string
	wrap := func(l *Leaf, name string) {
		cb := l.onFinished
		l.onFinished = func(done *Leaf) {
			order = append(order, name)
			cb(done)
		}
	}
	wrap(outer, "outer")
	wrap(inner, "inner")

	outer.Finish()

	assert.Equal(t, []string{"inner", "outer"}, order)
	assert.Equal(t, StateFinished, inner.State())
	assert.Empty(t, flow.Children())
	assert.Equal(t, 1, flow.Stack().Len())
}

func TestLeaf_UserProfileIsPresented(t *testing.T) {
	flow, _, factory := startedFlow(t)
	_, err := flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Number: 1})
	require.NoError(t, err)

	factory.last(nav.KindIssueDetail).events.ItemSelected(nav.UserRef{Login: "octocat"})

	assert.True(t, flow.Stack().TopIsModal())
	profile := factory.last(nav.KindUserProfile)
	require.NotNil(t, profile)
	assert.Equal(t, "octocat", profile.params.Login)

	profile.events.BackRequested()
	assert.False(t, flow.Stack().TopIsModal())
	assert.Equal(t, 2, flow.Stack().Len())
}

func TestSpawnLeaf_ConstructionFailureLeavesTreeUntouched(t *testing.T) {
	flow, _, factory := startedFlow(t)
	factory.fail[nav.KindMilestoneDetail] = true

	_, err := flow.SpawnLeaf(nav.KindMilestoneDetail, nav.Params{Milestone: 1})

	var cerr *nav.ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, nav.KindMilestoneDetail, cerr.Kind)
	assert.Empty(t, flow.Children())
	assert.Equal(t, 1, flow.Stack().Len())
}

func TestLeaf_OwnerTokenFollowsLifecycle(t *testing.T) {
	flow, _, factory := startedFlow(t)
	leaf, err := flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Number: 9})
	require.NoError(t, err)

	token := factory.last(nav.KindIssueDetail).params.Owner
	require.NotNil(t, token)
	assert.Same(t, leaf.Liveness(), token)
	assert.True(t, token.Alive())

	leaf.Finish()
	assert.False(t, token.Alive(), "results arriving after finish must be discarded")
}

func TestFlow_StartTwiceAndTeardown(t *testing.T) {
	flow, e, _ := startedFlow(t)
	assert.ErrorIs(t, flow.Start(), ErrAlreadyStarted)
	assert.Len(t, e.navigator.Contexts(), 1)

	_, err := flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Number: 1})
	require.NoError(t, err)

	flow.Teardown()
	flow.Teardown()

	assert.Empty(t, flow.Children())
	assert.Empty(t, e.navigator.Contexts())
	_, err = flow.SpawnLeaf(nav.KindIssueDetail, nav.Params{Number: 2})
	assert.Error(t, err)
}
