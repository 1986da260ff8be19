package github

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNoRepos is returned when a query is built without any repository, or with an empty repository name
var ErrNoRepos = errors.New("no repositories to search")

type assigneeMode int

const (
	assigneeAny assigneeMode = iota
	assigneeNone
	assigneeUser
)

// AssigneeFilter restricts results by assignment
type AssigneeFilter struct {
	mode assigneeMode
	user string
}

// AnyAssignee matches issues regardless of assignment
func AnyAssignee() AssigneeFilter {
	return AssigneeFilter{mode: assigneeAny}
}

// NoAssignee matches issues assigned to nobody
func NoAssignee() AssigneeFilter {
	return AssigneeFilter{mode: assigneeNone}
}

// AssignedTo matches issues assigned to user ("@me" for the authenticated user)
func AssignedTo(user string) AssigneeFilter {
	return AssigneeFilter{mode: assigneeUser, user: user}
}

// NewAssigneeFilter builds a filter from the --assignee and --no-assignee flags.
// A user takes precedence over nobody.
func NewAssigneeFilter(user string, nobody bool) AssigneeFilter {
	switch {
	case user != "":
		return AssignedTo(user)
	case nobody:
		return NoAssignee()
	default:
		return AnyAssignee()
	}
}

func (f AssigneeFilter) String() string {
	switch f.mode {
	case assigneeNone:
		return "nobody"
	case assigneeUser:
		return f.user
	default:
		return "anyone"
	}
}

// Query accumulates search filters. Build produces an immutable Invocation.
type Query struct {
	repos          []string
	labels         []string
	notLabels      []string
	includeClosed  bool
	assigneeFilter AssigneeFilter
}

// NewQuery returns an empty query matching open issues with any assignee
func NewQuery() *Query {
	return &Query{}
}

// Repo adds a repository ("owner/repo") to search
func (q *Query) Repo(repo string) *Query {
	q.repos = append(q.repos, repo)
	return q
}

// Repos adds several repositories
func (q *Query) Repos(repos ...string) *Query {
	for _, repo := range repos {
		q.Repo(repo)
	}
	return q
}

// Label requires a label to be present
func (q *Query) Label(label string) *Query {
	q.labels = append(q.labels, label)
	return q
}

// Labels requires several labels to be present
func (q *Query) Labels(labels ...string) *Query {
	for _, label := range labels {
		q.Label(label)
	}
	return q
}

// NotLabel requires a label to be absent
func (q *Query) NotLabel(label string) *Query {
	q.notLabels = append(q.notLabels, label)
	return q
}

// NotLabels requires several labels to be absent
func (q *Query) NotLabels(labels ...string) *Query {
	for _, label := range labels {
		q.NotLabel(label)
	}
	return q
}

// IncludeClosed controls whether closed issues are returned
func (q *Query) IncludeClosed(include bool) *Query {
	q.includeClosed = include
	return q
}

// Assignee sets the assignment filter
func (q *Query) Assignee(filter AssigneeFilter) *Query {
	q.assigneeFilter = filter
	return q
}

// Build validates the query and returns its invocation
func (q *Query) Build() (Invocation, error) {
	if len(q.repos) == 0 || slices.Contains(q.repos, "") {
		return Invocation{}, ErrNoRepos
	}

	return Invocation{
		repos:          slices.Clone(q.repos),
		labels:         slices.Clone(q.labels),
		notLabels:      slices.Clone(q.notLabels),
		includeClosed:  q.includeClosed,
		assigneeFilter: q.assigneeFilter,
	}, nil
}

// Invocation is a validated, immutable search
type Invocation struct {
	repos          []string
	labels         []string
	notLabels      []string
	includeClosed  bool
	assigneeFilter AssigneeFilter
}

// Repos returns the repositories searched
func (inv Invocation) Repos() []string {
	return slices.Clone(inv.repos)
}

// GhArgs returns the arguments for "gh search issues". Fields, when given, request JSON output.
func (inv Invocation) GhArgs(fields []string) []string {
	args := []string{"search", "issues"}

	for _, repo := range inv.repos {
		args = append(args, "--repo", repo)
	}

	for _, label := range inv.labels {
		args = append(args, "--label", label)
	}

	if !inv.includeClosed {
		args = append(args, "--state", "open")
	}

	switch inv.assigneeFilter.mode {
	case assigneeUser:
		args = append(args, "--assignee", inv.assigneeFilter.user)
	case assigneeNone:
		args = append(args, "--no-assignee")
	}

	if len(fields) > 0 {
		args = append(args, "--json", strings.Join(fields, ","))
	}

	if len(inv.notLabels) > 0 {
		args = append(args, "--")
		for _, label := range inv.notLabels {
			args = append(args, "-label:"+label)
		}
	}

	return args
}

// SearchQuery renders the invocation in GitHub search syntax
func (inv Invocation) SearchQuery() string {
	parts := []string{"is:issue"}

	for _, repo := range inv.repos {
		parts = append(parts, fmt.Sprintf("repo:%s", repo))
	}

	for _, label := range inv.labels {
		parts = append(parts, fmt.Sprintf("label:\"%s\"", label))
	}

	for _, label := range inv.notLabels {
		parts = append(parts, fmt.Sprintf("-label:\"%s\"", label))
	}

	if !inv.includeClosed {
		parts = append(parts, "is:open")
	}

	switch inv.assigneeFilter.mode {
	case assigneeUser:
		parts = append(parts, fmt.Sprintf("assignee:%s", inv.assigneeFilter.user))
	case assigneeNone:
		parts = append(parts, "no:assignee")
	}

	return strings.Join(parts, " ")
}
