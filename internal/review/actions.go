// Package review classifies search results into the kinds of request a group tracks, and
// describes how each kind is reported.
package review

import (
	"fmt"
	"time"

	"github.com/alan/nu-tracker/internal/due"
	"github.com/alan/nu-tracker/internal/github"
	"github.com/alan/nu-tracker/internal/report"
)

// ActionLabel marks an issue as an action
const ActionLabel = "action"

const noDate = "(no date)"

// Action is an issue labelled as an action, with its due date if one was given
type Action struct {
	Due       *time.Time
	Locator   github.Locator
	Title     string
	Assignees string
}

// ActionsQuery finds open actions in repos
func ActionsQuery(repos, labels []string, assignee github.AssigneeFilter, closed bool) *github.Query {
	return github.NewQuery().
		Repos(repos...).
		Assignee(assignee).
		Labels(labels...).
		Label(ActionLabel).
		IncludeClosed(closed)
}

// ActionsReport lists actions by due date
func ActionsReport(inv github.Invocation) report.Report[Action] {
	return report.Report[Action]{
		Name:       "actions",
		Invocation: inv,
		Fields: []string{
			github.FieldAssignees, github.FieldBody, github.FieldNumber, github.FieldRepository, github.FieldTitle,
		},
		Classify: ClassifyAction,
		Compare: func(a, b Action) int {
			return due.CompareDates(a.Due, b.Due)
		},
		Table:   actionsTable,
		Meeting: actionsMeeting,
		Agenda:  actionsAgenda,
	}
}

// ClassifyAction reads an action's due date from its body. Actions without one are kept, with a
// warning.
func ClassifyAction(issue github.Issue) (Action, error) {
	action := Action{
		Locator:   issue.Locator(),
		Title:     issue.Title,
		Assignees: issue.AssigneeList(),
	}

	date, found := due.FromBody(issue.Body)
	if !found {
		return action, &report.IssueWarning{
			Number: issue.Number,
			Title:  issue.Title,
			Reason: "Unable to identify due date",
			Keep:   true,
		}
	}

	action.Due = &date
	return action, nil
}

func actionsTable(actions []Action) string {
	rows := make([][]string, 0, len(actions))
	for _, action := range actions {
		rows = append(rows, []string{
			due.Format(action.Due, noDate),
			action.Locator.String(),
			action.Title,
			action.Assignees,
		})
	}
	return report.Table([]string{"DUE", "LOCATOR", "TITLE", "ASSIGNEES"}, rows, nil)
}

func actionsMeeting(actions []Action) string {
	items := make([]report.MeetingItem, 0, len(actions))
	for _, action := range actions {
		items = append(items, report.MeetingItem{
			Title: action.Title,
			Lines: []string{
				action.Locator.URL(),
				"Due: " + due.Format(action.Due, noDate),
				"Assignees: " + action.Assignees,
			},
		})
	}
	return report.Meeting(items)
}

func actionsAgenda(actions []Action) string {
	items := make([]report.AgendaItem, 0, len(actions))
	for _, action := range actions {
		items = append(items, report.AgendaItem{
			Title:  action.Title,
			URL:    action.Locator.URL(),
			Suffix: fmt.Sprintf("(due %s)", due.Format(action.Due, noDate)),
		})
	}
	return report.Agenda(items)
}
