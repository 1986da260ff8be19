package github

import "strings"

// Unassigned is shown in place of an empty assignee list
const Unassigned = "UNASSIGNED"

// Field names understood by "gh search issues --json"
const (
	FieldAssignees  = "assignees"
	FieldAuthor     = "author"
	FieldBody       = "body"
	FieldLabels     = "labels"
	FieldNumber     = "number"
	FieldRepository = "repository"
	FieldTitle      = "title"
)

// Issue represents an issue returned by a search
type Issue struct {
	Number     int        `json:"number"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	Labels     []Label    `json:"labels"`
	Assignees  []User     `json:"assignees"`
	Author     User       `json:"author"`
	Repository Repository `json:"repository"`
}

// Label is an issue label
type Label struct {
	Name string `json:"name"`
}

// User is an assignee or author
type User struct {
	Login string `json:"login"`
}

// Repository identifies the repository an issue belongs to
type Repository struct {
	Name          string `json:"name"`
	NameWithOwner string `json:"nameWithOwner"`
}

// LabelNames returns the names of the issue's labels, in order
func (i Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, label := range i.Labels {
		names = append(names, label.Name)
	}
	return names
}

// AssigneeList joins assignee logins with commas, or returns Unassigned
func (i Issue) AssigneeList() string {
	logins := make([]string, 0, len(i.Assignees))
	for _, user := range i.Assignees {
		logins = append(logins, user.Login)
	}
	if len(logins) == 0 {
		return Unassigned
	}
	return strings.Join(logins, ",")
}

// Locator returns the locator of the issue itself
func (i Issue) Locator() Locator {
	owner, repo, _ := strings.Cut(i.Repository.NameWithOwner, "/")
	return Locator{Owner: owner, Repo: repo, Number: i.Number}
}
