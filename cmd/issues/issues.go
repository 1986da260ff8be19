// Package issues implements the issues and actions commands for querying a group's repositories.
package issues

import (
	"github.com/alan/nu-tracker/internal/commands"
	"github.com/alan/nu-tracker/internal/report"
	"github.com/alan/nu-tracker/internal/review"
	"github.com/spf13/cobra"
)

type options struct {
	repos          commands.RepoSelection
	assignee       commands.AssigneeArgs
	labels         []string
	closed         bool
	formats        []string
	includeActions bool
}

// NewIssuesCmd creates and returns the issues command
func NewIssuesCmd(base *commands.BaseCommand) *cobra.Command {
	var opts options

	issuesCmd := &cobra.Command{
		Use:   "issues",
		Short: "Query issues or actions; use 'gh' to display results table",
		Long: `Query issues in the group's and/or its task forces' repositories.

Issues labelled 'action' are left out unless --actions is given, or 'action' is
one of the requested labels. The table is shown by gh itself.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			base.Context = cobraCmd.Context()
			return runIssues(base, &opts)
		},
	}

	addSharedFlags(issuesCmd, &opts)
	issuesCmd.Flags().BoolVarP(&opts.includeActions, "actions", "a", false, "Include actions (issues with the label 'action')")

	return issuesCmd
}

// NewActionsCmd creates and returns the actions command
func NewActionsCmd(base *commands.BaseCommand) *cobra.Command {
	var opts options

	actionsCmd := &cobra.Command{
		Use:   "actions",
		Short: "Query actions; display results, by due date, in a custom table",
		Long: `Query issues labelled 'action' in the group's and/or its task forces' repositories.

Due dates are read from a "Due: YYYY-MM-DD" line in each action's body. Actions
without a due date are listed first, with a warning.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			base.Context = cobraCmd.Context()
			return runActions(base, &opts)
		},
	}

	addSharedFlags(actionsCmd, &opts)

	return actionsCmd
}

// addSharedFlags adds the flags common to issues and actions
func addSharedFlags(cobraCmd *cobra.Command, opts *options) {
	commands.AddRepoFlags(cobraCmd, &opts.repos)
	commands.AddAssigneeFlags(cobraCmd, &opts.assignee)
	commands.AddReportFlag(cobraCmd, &opts.formats)
	cobraCmd.Flags().StringSliceVarP(&opts.labels, "label", "l", nil, "Only those with all of the given labels")
	cobraCmd.Flags().BoolVarP(&opts.closed, "closed", "c", false, "Include closed ones")
}

func runIssues(base *commands.BaseCommand, opts *options) error {
	formats, repos, err := prepare(base, opts)
	if err != nil {
		return err
	}

	inv, err := review.IssuesQuery(repos, opts.labels, opts.assignee.Filter(), opts.closed, opts.includeActions).Build()
	if err != nil {
		return err
	}

	return report.Run(base.Context, base.Runner, review.IssuesReport(inv), formats)
}

func runActions(base *commands.BaseCommand, opts *options) error {
	formats, repos, err := prepare(base, opts)
	if err != nil {
		return err
	}

	inv, err := review.ActionsQuery(repos, opts.labels, opts.assignee.Filter(), opts.closed).Build()
	if err != nil {
		return err
	}

	return report.Run(base.Context, base.Runner, review.ActionsReport(inv), formats)
}

// prepare validates the report formats, initializes the base command and selects repos
func prepare(base *commands.BaseCommand, opts *options) ([]report.Format, []string, error) {
	formats, err := report.ParseFormats(opts.formats)
	if err != nil {
		return nil, nil, err
	}

	if err := base.Init(); err != nil {
		return nil, nil, err
	}

	repos, err := commands.SelectRepos(base.Group, opts.repos)
	if err != nil {
		return nil, nil, err
	}

	return formats, repos, nil
}
