package review

import (
	"fmt"

	"github.com/alan/nu-tracker/internal/github"
	"github.com/alan/nu-tracker/internal/labels"
	"github.com/alan/nu-tracker/internal/report"
)

// Labels carried by every charter review request
const (
	CharterLabel         = "charter"
	ReviewRequestedLabel = "Horizontal review requested"
)

// CharterRequest is a request for horizontal review of a group's charter
type CharterRequest struct {
	ID      int
	Title   string
	Status  *labels.Status
	Locator github.Locator
}

// ChartersQuery finds charter review requests, across all groups. status and notStatus are label names.
func ChartersQuery(repo string, status, notStatus []string) *github.Query {
	return github.NewQuery().
		Labels(CharterLabel, ReviewRequestedLabel).
		Labels(status...).
		NotLabels(notStatus...).
		Repo(repo)
}

// ChartersReport lists charter review requests
func ChartersReport(inv github.Invocation) report.Report[CharterRequest] {
	return report.Report[CharterRequest]{
		Name:       "charters",
		Invocation: inv,
		Fields:     []string{github.FieldLabels, github.FieldNumber, github.FieldRepository, github.FieldTitle},
		Classify: func(issue github.Issue) (CharterRequest, error) {
			return ClassifyCharter(issue), nil
		},
		Table:   chartersTable,
		Meeting: chartersMeeting,
		Agenda:  chartersAgenda,
	}
}

// ClassifyCharter reads a charter request's review status from its labels
func ClassifyCharter(issue github.Issue) CharterRequest {
	status := labels.Charters.NewStatus()
	for _, name := range issue.LabelNames() {
		status.Mark(name)
	}

	return CharterRequest{
		ID:      issue.Number,
		Title:   issue.Title,
		Status:  status,
		Locator: issue.Locator(),
	}
}

func chartersTable(requests []CharterRequest) string {
	var invalid []report.InvalidRow
	rows := make([][]string, 0, len(requests))

	for _, request := range requests {
		rows = append(rows, []string{fmt.Sprint(request.ID), request.Title, request.Status.String()})
		if !request.Status.IsValid() {
			invalid = append(invalid, report.InvalidRow{ID: request.ID, Title: request.Title, Status: request.Status.String()})
		}
	}

	table := report.Table([]string{"ID", "TITLE", "STATUS"}, rows, nil)
	if section := report.InvalidStatuses(invalid); section != "" {
		return section + "\n" + table
	}
	return table
}

func chartersMeeting(requests []CharterRequest) string {
	items := make([]report.MeetingItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, report.MeetingItem{
			Title: request.Title,
			Lines: []string{request.Locator.URL()},
		})
	}
	return report.Meeting(items)
}

func chartersAgenda(requests []CharterRequest) string {
	items := make([]report.AgendaItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, report.AgendaItem{
			Title: request.Title,
			URL:   request.Locator.URL(),
		})
	}
	return report.Agenda(items)
}
