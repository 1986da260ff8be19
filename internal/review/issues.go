package review

import (
	"slices"

	"github.com/alan/nu-tracker/internal/github"
	"github.com/alan/nu-tracker/internal/report"
)

// IssuesQuery finds issues in repos. Actions are left out unless includeActions is set or the
// action label is asked for explicitly.
func IssuesQuery(repos, labels []string, assignee github.AssigneeFilter, closed, includeActions bool) *github.Query {
	query := github.NewQuery().
		Labels(labels...).
		Repos(repos...).
		IncludeClosed(closed).
		Assignee(assignee)

	if !includeActions && !slices.Contains(labels, ActionLabel) {
		query.NotLabel(ActionLabel)
	}

	return query
}

// IssuesReport has gh list the issues itself
func IssuesReport(inv github.Invocation) report.Report[github.Issue] {
	return report.Report[github.Issue]{
		Name:          "issues",
		Invocation:    inv,
		Classify:      func(issue github.Issue) (github.Issue, error) { return issue, nil },
		DelegateTable: true,
	}
}
