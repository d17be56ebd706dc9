package github

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demo(t *testing.T) *Fixture {
	t.Helper()
	f := NewDemoFixture()
	f.Latency = 0
	f.Token = func() string { return "demo" }
	return f
}

func TestFixture_RequiresToken(t *testing.T) {
	f := demo(t)
	f.Token = nil

	_, err := fetchSync(t, f, ResourceCurrentUser, Query{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	v, err := fetchSync(t, f, ResourceCurrentUser, Query{Token: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "octocat", v.(User).Login)
}

func TestFixture_IssueFilters(t *testing.T) {
	f := demo(t)

	v, err := fetchSync(t, f, ResourceIssues, Query{Repo: "octocat/hello-world"})
	require.NoError(t, err)
	for _, is := range v.([]Issue) {
		assert.Equal(t, "open", is.State)
	}

	v, err = fetchSync(t, f, ResourceIssues, Query{Repo: "octocat/hello-world", Milestone: 1})
	require.NoError(t, err)
	assert.Len(t, v.([]Issue), 3, "milestone views include closed issues")

	_, err = fetchSync(t, f, ResourceIssues, Query{Repo: "octocat/missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFixture_LookupsByNumber(t *testing.T) {
	f := demo(t)

	v, err := fetchSync(t, f, ResourceIssue, Query{Repo: "octocat/hello-world", Number: 1})
	require.NoError(t, err)
	assert.Contains(t, v.(Issue).Body, "#3")

	v, err = fetchSync(t, f, ResourceComments, Query{Repo: "octocat/hello-world", Number: 1})
	require.NoError(t, err)
	assert.Len(t, v.([]Comment), 2)

	v, err = fetchSync(t, f, ResourceMilestone, Query{Repo: "octocat/hello-world", Milestone: 2})
	require.NoError(t, err)
	assert.Equal(t, "v2.0", v.(Milestone).Title)

	_, err = fetchSync(t, f, ResourceUser, Query{Login: "nobody"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFixture_LatencyHonoursContext(t *testing.T) {
	f := demo(t)
	f.Latency = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	f.Fetch(ctx, ResourceCurrentUser, Query{}, func(_ any, err error) { done <- err })
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("completion was never called")
	}
}
