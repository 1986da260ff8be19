package commands

import (
	"errors"
	"fmt"

	"github.com/alan/nu-tracker/cmd"
)

// Repo selection errors
var (
	ErrNoneSelected = errors.New("no repos selected (use -g, -t or -T)")
	ErrNoTaskForces = errors.New("this group has no task forces")
)

// UnknownTaskForceError is returned when a requested TF is not one of the group's
type UnknownTaskForceError struct {
	TaskForce string
	Known     []string
}

func (e *UnknownTaskForceError) Error() string {
	return fmt.Sprintf("Unknown TF '%s'. Please consider contributing an update to the info for this TF's group. "+
		"Known TFs for this group are: %s", e.TaskForce, quoteAll(e.Known))
}

// RepoSelection says which of a group's repos to query
type RepoSelection struct {
	Group         bool
	TaskForces    []string
	AllTaskForces bool
	MainOnly      bool
}

// SelectRepos returns the repos of the group and/or its task forces, in a stable order
func SelectRepos(group cmd.GroupRepos, sel RepoSelection) ([]string, error) {
	var repos []string

	if sel.Group {
		repos = appendRepos(repos, group.WorkingGroup, sel.MainOnly)
	}

	if sel.AllTaskForces || len(sel.TaskForces) > 0 {
		if len(group.TaskForces) == 0 {
			return nil, ErrNoTaskForces
		}

		names := sel.TaskForces
		if sel.AllTaskForces {
			names = group.TaskForceNames()
		}

		for _, name := range names {
			tf, ok := group.TaskForces[name]
			if !ok {
				return nil, &UnknownTaskForceError{TaskForce: name, Known: group.TaskForceNames()}
			}
			repos = appendRepos(repos, tf, sel.MainOnly)
		}
	}

	if len(repos) == 0 {
		return nil, ErrNoneSelected
	}

	return repos, nil
}

func appendRepos(repos []string, team cmd.MainAndOtherRepos, mainOnly bool) []string {
	if mainOnly {
		return append(repos, team.Main)
	}
	return append(repos, team.All()...)
}
