package commands

import (
	"fmt"
	"strconv"

	"github.com/alan/nu-tracker/internal/github"
)

// ParseRequestNumber parses the optional request number argument.
// ok is false when no number was given.
func ParseRequestNumber(args []string) (number int, ok bool, err error) {
	if len(args) == 0 {
		return 0, false, nil
	}

	number, err = strconv.Atoi(args[0])
	if err != nil || number < 1 {
		return 0, false, fmt.Errorf("invalid request number %q", args[0])
	}
	return number, true, nil
}

// AssigneeArgs holds the assignee filter flags shared by several commands
type AssigneeArgs struct {
	User       string
	NoAssignee bool
}

// Filter converts the flags to a search filter
func (a AssigneeArgs) Filter() github.AssigneeFilter {
	return github.NewAssigneeFilter(a.User, a.NoAssignee)
}
