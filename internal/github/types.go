package github

import "time"

// User is a GitHub account.
type User struct {
	Login       string
	Name        string
	Bio         string
	Company     string
	Location    string
	PublicRepos int
	Followers   int
	Following   int
	HTMLURL     string
}

// Repository is a repository the signed-in user can see.
type Repository struct {
	FullName        string
	Description     string
	Private         bool
	StargazersCount int
	OpenIssuesCount int
	UpdatedAt       time.Time
}

// Label is an issue label.
type Label struct {
	Name  string
	Color string
}

// Issue is an issue of a repository. Pull requests are never returned as issues.
type Issue struct {
	Number    int
	Title     string
	State     string
	Body      string
	User      User
	Labels    []Label
	Comments  int
	Milestone *Milestone
	HTMLURL   string
	CreatedAt time.Time
}

// Comment is a comment on an issue.
type Comment struct {
	User      User
	Body      string
	CreatedAt time.Time
}

// Milestone groups issues of a repository.
type Milestone struct {
	Number       int
	Title        string
	Description  string
	State        string
	OpenIssues   int
	ClosedIssues int
	DueOn        *time.Time
}

// Progress returns the share of closed issues, 0 for an empty milestone.
func (m Milestone) Progress() float64 {
	total := m.OpenIssues + m.ClosedIssues
	if total == 0 {
		return 0
	}
	return float64(m.ClosedIssues) / float64(total)
}
