package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gitrack/pkg/logging"

	gh "github.com/google/go-github/v66/github"
)

const clientSubsystem = "GitHub"

// ClientOptions configures a Client.
type ClientOptions struct {
	// BaseURL is the API root. Anything other than api.github.com is treated
	// as a GitHub Enterprise server.
	BaseURL string
	PerPage int
	Timeout time.Duration
	// Token returns the credential to send. It is read on every request so a
	// sign-out takes effect immediately.
	Token      func() string
	HTTPClient *http.Client
}

// Client talks to the GitHub REST API.
type Client struct {
	api     *gh.Client
	perPage int
	token   func() string
	baseErr error
}

// NewClient returns a REST client. An unparsable BaseURL is reported by every
// Fetch rather than here, so the app still starts and the screens show it.
func NewClient(opts ClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = 30
	}
	token := opts.Token
	if token == nil {
		token = func() string { return "" }
	}

	c := &Client{api: gh.NewClient(httpClient), perPage: perPage, token: token}
	if opts.BaseURL != "" {
		api, err := c.api.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			c.baseErr = fmt.Errorf("invalid API URL %q: %w", opts.BaseURL, err)
		} else {
			c.api = api
		}
	}
	return c
}

// Fetch implements Service.
func (c *Client) Fetch(ctx context.Context, kind ResourceKind, q Query, completion Completion) {
	go func() {
		value, err := c.resolve(ctx, kind, q)
		if err != nil {
			logging.Debug(clientSubsystem, "Fetching %s failed: %v", kind, err)
		}
		completion(value, err)
	}()
}

// clientFor returns the API client authenticated with the query's token, or
// the stored one when the query carries none.
func (c *Client) clientFor(q Query) *gh.Client {
	token := q.Token
	if token == "" {
		token = c.token()
	}
	if token == "" {
		return c.api
	}
	return c.api.WithAuthToken(token)
}

func (c *Client) resolve(ctx context.Context, kind ResourceKind, q Query) (any, error) {
	if c.baseErr != nil {
		return nil, c.baseErr
	}
	api := c.clientFor(q)
	page := gh.ListOptions{PerPage: c.perPage}

	switch kind {
	case ResourceCurrentUser, ResourceUser:
		login := ""
		if kind == ResourceUser {
			login = q.Login
		}
		user, _, err := api.Users.Get(ctx, login)
		if err != nil {
			return nil, apiError(err)
		}
		return userFrom(user), nil

	case ResourceRepositories:
		repos, _, err := api.Repositories.ListByAuthenticatedUser(ctx, &gh.RepositoryListByAuthenticatedUserOptions{
			Affiliation: "owner,collaborator,organization_member",
			Sort:        "updated",
			ListOptions: page,
		})
		if err != nil {
			return nil, apiError(err)
		}
		out := make([]Repository, 0, len(repos))
		for _, r := range repos {
			out = append(out, Repository{
				FullName:        r.GetFullName(),
				Description:     r.GetDescription(),
				Private:         r.GetPrivate(),
				StargazersCount: r.GetStargazersCount(),
				OpenIssuesCount: r.GetOpenIssuesCount(),
				UpdatedAt:       r.GetUpdatedAt().Time,
			})
		}
		return out, nil
	}

	owner, name, err := SplitRepo(q.Repo)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ResourceIssues:
		opts := &gh.IssueListByRepoOptions{State: stateOr(q.State, "open"), ListOptions: page}
		if q.Milestone > 0 {
			opts.Milestone = fmt.Sprint(q.Milestone)
			opts.State = stateOr(q.State, "all")
		}
		issues, _, err := api.Issues.ListByRepo(ctx, owner, name, opts)
		if err != nil {
			return nil, apiError(err)
		}
		out := make([]Issue, 0, len(issues))
		for _, is := range issues {
			// the issues endpoint returns pull requests too
			if is.IsPullRequest() {
				continue
			}
			out = append(out, issueFrom(is))
		}
		return out, nil

	case ResourceIssue:
		is, _, err := api.Issues.Get(ctx, owner, name, q.Number)
		if err != nil {
			return nil, apiError(err)
		}
		return issueFrom(is), nil

	case ResourceComments:
		comments, _, err := api.Issues.ListComments(ctx, owner, name, q.Number, &gh.IssueListCommentsOptions{ListOptions: page})
		if err != nil {
			return nil, apiError(err)
		}
		out := make([]Comment, 0, len(comments))
		for _, cm := range comments {
			out = append(out, Comment{
				User:      userFrom(cm.GetUser()),
				Body:      cm.GetBody(),
				CreatedAt: cm.GetCreatedAt().Time,
			})
		}
		return out, nil

	case ResourceMilestones:
		milestones, _, err := api.Issues.ListMilestones(ctx, owner, name, &gh.MilestoneListOptions{
			State:       stateOr(q.State, "open"),
			ListOptions: page,
		})
		if err != nil {
			return nil, apiError(err)
		}
		out := make([]Milestone, 0, len(milestones))
		for _, m := range milestones {
			out = append(out, milestoneFrom(m))
		}
		return out, nil

	case ResourceMilestone:
		m, _, err := api.Issues.GetMilestone(ctx, owner, name, q.Milestone)
		if err != nil {
			return nil, apiError(err)
		}
		return milestoneFrom(m), nil

	default:
		return nil, fmt.Errorf("unknown resource %q", kind)
	}
}

// apiError turns go-github's response errors into *APIError so callers can
// match ErrNotFound and ErrUnauthorized.
func apiError(err error) error {
	var resp *http.Response
	var msg string

	var errResp *gh.ErrorResponse
	var rateErr *gh.RateLimitError
	switch {
	case errors.As(err, &errResp):
		resp, msg = errResp.Response, errResp.Message
	case errors.As(err, &rateErr):
		resp, msg = rateErr.Response, rateErr.Message
	default:
		return err
	}
	if resp == nil {
		return err
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

func userFrom(u *gh.User) User {
	return User{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		Company:     u.GetCompany(),
		Location:    u.GetLocation(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		HTMLURL:     u.GetHTMLURL(),
	}
}

func issueFrom(is *gh.Issue) Issue {
	out := Issue{
		Number:    is.GetNumber(),
		Title:     is.GetTitle(),
		State:     is.GetState(),
		Body:      is.GetBody(),
		User:      userFrom(is.GetUser()),
		Comments:  is.GetComments(),
		HTMLURL:   is.GetHTMLURL(),
		CreatedAt: is.GetCreatedAt().Time,
	}
	for _, l := range is.Labels {
		out.Labels = append(out.Labels, Label{Name: l.GetName(), Color: l.GetColor()})
	}
	if is.Milestone != nil {
		m := milestoneFrom(is.Milestone)
		out.Milestone = &m
	}
	return out
}

func milestoneFrom(m *gh.Milestone) Milestone {
	out := Milestone{
		Number:       m.GetNumber(),
		Title:        m.GetTitle(),
		Description:  m.GetDescription(),
		State:        m.GetState(),
		OpenIssues:   m.GetOpenIssues(),
		ClosedIssues: m.GetClosedIssues(),
	}
	if m.DueOn != nil {
		due := m.DueOn.Time
		out.DueOn = &due
	}
	return out
}

func stateOr(state, fallback string) string {
	if state != "" {
		return state
	}
	return fallback
}
