package github

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Fixture serves canned data without touching the network. Any non-empty
// token is accepted as belonging to Viewer.
type Fixture struct {
	Viewer       User
	Users        map[string]User
	Repositories []Repository
	Issues       map[string][]Issue
	Comments     map[string][]Comment
	Milestones   map[string][]Milestone
	// Latency delays every completion, which makes stale results easy to
	// produce by hand in demo mode.
	Latency time.Duration
	// Token returns the stored credential when a query carries none.
	Token func() string
}

// Fetch implements Service.
func (f *Fixture) Fetch(ctx context.Context, kind ResourceKind, q Query, completion Completion) {
	go func() {
		if f.Latency > 0 {
			select {
			case <-time.After(f.Latency):
			case <-ctx.Done():
				completion(nil, ctx.Err())
				return
			}
		}
		completion(f.resolve(kind, q))
	}()
}

func (f *Fixture) resolve(kind ResourceKind, q Query) (any, error) {
	token := q.Token
	if token == "" && f.Token != nil {
		token = f.Token()
	}
	if token == "" {
		return nil, &APIError{StatusCode: 401, Message: "Requires authentication"}
	}

	switch kind {
	case ResourceCurrentUser:
		return f.Viewer, nil
	case ResourceUser:
		if q.Login == f.Viewer.Login {
			return f.Viewer, nil
		}
		u, ok := f.Users[q.Login]
		if !ok {
			return nil, &APIError{StatusCode: 404, Message: "Not Found"}
		}
		return u, nil
	case ResourceRepositories:
		return append([]Repository(nil), f.Repositories...), nil
	case ResourceIssues:
		issues, ok := f.Issues[q.Repo]
		if !ok {
			return nil, &APIError{StatusCode: 404, Message: "Not Found"}
		}
		var out []Issue
		for _, is := range issues {
			if q.Milestone > 0 && (is.Milestone == nil || is.Milestone.Number != q.Milestone) {
				continue
			}
			if q.Milestone == 0 && stateOr(q.State, "open") != "all" && is.State != stateOr(q.State, "open") {
				continue
			}
			out = append(out, is)
		}
		return out, nil
	case ResourceIssue:
		for _, is := range f.Issues[q.Repo] {
			if is.Number == q.Number {
				return is, nil
			}
		}
		return nil, &APIError{StatusCode: 404, Message: "Not Found"}
	case ResourceComments:
		return append([]Comment(nil), f.Comments[commentKey(q.Repo, q.Number)]...), nil
	case ResourceMilestones:
		return append([]Milestone(nil), f.Milestones[q.Repo]...), nil
	case ResourceMilestone:
		for _, m := range f.Milestones[q.Repo] {
			if m.Number == q.Milestone {
				return m, nil
			}
		}
		return nil, &APIError{StatusCode: 404, Message: "Not Found"}
	default:
		return nil, fmt.Errorf("unknown resource %q", kind)
	}
}

func commentKey(repo string, number int) string {
	return fmt.Sprintf("%s#%d", repo, number)
}

// NewDemoFixture returns a small, self-consistent data set.
func NewDemoFixture() *Fixture {
	viewer := User{Login: "octocat", Name: "The Octocat", Bio: "Keeps an eye on issues.", Company: "@github", Location: "San Francisco", PublicRepos: 2, Followers: 42, Following: 7, HTMLURL: "https://github.com/octocat"}
	hubot := User{Login: "hubot", Name: "Hubot", Bio: "Automates the boring parts.", PublicRepos: 12, Followers: 9000, HTMLURL: "https://github.com/hubot"}
	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	v1 := Milestone{Number: 1, Title: "v1.0", Description: "First stable release.", State: "open", OpenIssues: 2, ClosedIssues: 1, DueOn: &due}
	v2 := Milestone{Number: 2, Title: "v2.0", Description: "Everything we postponed.", State: "open", OpenIssues: 1}

	issues := []Issue{
		{Number: 1, Title: "Crash when opening an empty repository", State: "open", User: hubot, Milestone: &v1, Comments: 2, CreatedAt: created,
			Body: "Opening a repository without issues panics.\n\nSee also #3 which has the same stack trace.", Labels: []Label{{Name: "bug", Color: "d73a4a"}}},
		{Number: 2, Title: "Remember the last selected tab", State: "open", User: viewer, Milestone: &v1, CreatedAt: created.Add(24 * time.Hour),
			Body: "Restore the tab that was open when the app quit.", Labels: []Label{{Name: "enhancement", Color: "a2eeef"}}},
		{Number: 3, Title: "Stack trace in empty state view", State: "closed", User: viewer, Milestone: &v1, CreatedAt: created.Add(48 * time.Hour),
			Body: "Duplicate of #1. Fixed by guarding the empty list."},
		{Number: 4, Title: "Offline mode", State: "open", User: hubot, Milestone: &v2, CreatedAt: created.Add(72 * time.Hour),
			Body: "Cache the last fetched pages. Depends on #2."},
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].Number > issues[j].Number })
	for i := range issues {
		issues[i].HTMLURL = fmt.Sprintf("https://github.com/octocat/hello-world/issues/%d", issues[i].Number)
	}

	return &Fixture{
		Viewer: viewer,
		Users:  map[string]User{hubot.Login: hubot},
		Repositories: []Repository{
			{FullName: "octocat/hello-world", Description: "My first repository.", StargazersCount: 1500, OpenIssuesCount: 3},
			{FullName: "octocat/spoon-knife", Description: "Fork me.", StargazersCount: 12000},
		},
		Issues: map[string][]Issue{
			"octocat/hello-world": issues,
			"octocat/spoon-knife": nil,
		},
		Comments: map[string][]Comment{
			commentKey("octocat/hello-world", 1): {
				{User: viewer, Body: "Reproduced on main.", CreatedAt: created.Add(time.Hour)},
				{User: hubot, Body: "Bisected to the list refactor.", CreatedAt: created.Add(2 * time.Hour)},
			},
		},
		Milestones: map[string][]Milestone{
			"octocat/hello-world": {v1, v2},
		},
		Latency: 300 * time.Millisecond,
	}
}
