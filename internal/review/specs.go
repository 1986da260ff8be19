package review

import (
	"fmt"
	"time"

	"github.com/alan/nu-tracker/internal/due"
	"github.com/alan/nu-tracker/internal/github"
	"github.com/alan/nu-tracker/internal/report"
)

// SpecRequest is a request for horizontal review of a spec
type SpecRequest struct {
	ID        int
	Spec      string
	Due       time.Time
	Locator   github.Locator
	Assignees string
}

// SpecsQuery finds open spec review requests in a horizontal review repo
func SpecsQuery(repo string, assignee github.AssigneeFilter) *github.Query {
	return github.NewQuery().Repo(repo).Assignee(assignee)
}

// SpecsReport lists spec review requests by due date
func SpecsReport(inv github.Invocation) report.Report[SpecRequest] {
	return report.Report[SpecRequest]{
		Name:       "spec review requests",
		Invocation: inv,
		Fields:     []string{github.FieldAssignees, github.FieldNumber, github.FieldRepository, github.FieldTitle},
		Classify:   ClassifySpec,
		Compare: func(a, b SpecRequest) int {
			return a.Due.Compare(b.Due)
		},
		Table:   specsTable,
		Meeting: specsMeeting,
		Agenda:  specsAgenda,
	}
}

// ClassifySpec reads the spec name and due date from a review request's title. Requests whose
// title cannot be read are dropped, with a warning.
func ClassifySpec(issue github.Issue) (SpecRequest, error) {
	parsed, found := due.FromSpecTitle(issue.Title)
	if !found {
		return SpecRequest{}, &report.IssueWarning{
			Number: issue.Number,
			Title:  issue.Title,
			Reason: "Unable to identify due date",
		}
	}

	return SpecRequest{
		ID:        issue.Number,
		Spec:      parsed.Spec,
		Due:       parsed.Due,
		Locator:   issue.Locator(),
		Assignees: issue.AssigneeList(),
	}, nil
}

func specsTable(requests []SpecRequest) string {
	rows := make([][]string, 0, len(requests))
	for _, request := range requests {
		rows = append(rows, []string{
			request.Due.Format(due.DateLayout),
			fmt.Sprint(request.ID),
			request.Spec,
			request.Assignees,
		})
	}
	return report.Table([]string{"DUE", "ID", "SPEC", "ASSIGNEES"}, rows, nil)
}

func specsMeeting(requests []SpecRequest) string {
	items := make([]report.MeetingItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, report.MeetingItem{
			Title: request.Spec,
			Lines: []string{
				request.Locator.URL(),
				"Due: " + request.Due.Format(due.DateLayout),
			},
		})
	}
	return report.Meeting(items)
}

func specsAgenda(requests []SpecRequest) string {
	items := make([]report.AgendaItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, report.AgendaItem{
			Title:  request.Spec,
			URL:    request.Locator.URL(),
			Suffix: fmt.Sprintf("(due %s)", request.Due.Format(due.DateLayout)),
		})
	}
	return report.Agenda(items)
}
