// Package github is the remote data service the screens load from. It has a
// REST client for api.github.com (or an Enterprise server) and an offline
// fixture used by demo mode and tests.
package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ResourceKind names what to fetch.
type ResourceKind string

const (
	ResourceCurrentUser  ResourceKind = "current-user"
	ResourceUser         ResourceKind = "user"
	ResourceRepositories ResourceKind = "repositories"
	ResourceIssues       ResourceKind = "issues"
	ResourceIssue        ResourceKind = "issue"
	ResourceComments     ResourceKind = "comments"
	ResourceMilestones   ResourceKind = "milestones"
	ResourceMilestone    ResourceKind = "milestone"
)

// Query parameterises a fetch. Which fields matter depends on the kind.
type Query struct {
	// Token overrides the stored credential, used to verify a token before it is saved.
	Token     string
	Repo      string
	Number    int
	Login     string
	Milestone int
	State     string
}

// Completion receives the fetched value: User, []Repository, []Issue, Issue,
// []Comment, []Milestone or Milestone depending on the kind.
type Completion func(value any, err error)

// Service fetches remote data. Fetch returns immediately and calls
// completion exactly once from another goroutine; callers marshal the result
// back to wherever they need it.
type Service interface {
	Fetch(ctx context.Context, kind ResourceKind, q Query, completion Completion)
}

var (
	// ErrNotFound is returned for unknown repositories, issues and users.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the token is missing or rejected.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api: %d %s", e.StatusCode, e.Message)
}

// Is lets errors.Is match the sentinel errors.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrUnauthorized:
		return e.StatusCode == 401
	default:
		return false
	}
}

// SplitRepo splits "owner/name".
func SplitRepo(full string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository %q, want owner/name", full)
	}
	return owner, name, nil
}
