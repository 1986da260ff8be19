// Package specs implements the specs command for listing spec review requests by due date.
package specs

import (
	"fmt"

	"github.com/alan/nu-tracker/internal/commands"
	"github.com/alan/nu-tracker/internal/report"
	"github.com/alan/nu-tracker/internal/review"
	"github.com/spf13/cobra"
)

// NewSpecsCmd creates and returns the specs command
func NewSpecsCmd(base *commands.BaseCommand) *cobra.Command {
	var assignee commands.AssigneeArgs
	var formats []string

	specsCmd := &cobra.Command{
		Use:   "specs [review-number]",
		Short: "List review requests by due date, or open a specific request",
		Long: `List spec review requests in the group's specs repository, soonest due first.

Due dates are worked out from the dates in each request's title. Requests whose
titles have no date are left out, with a warning.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			base.Context = cobraCmd.Context()
			return runSpecs(base, assignee, formats, args)
		},
	}

	commands.AddAssigneeFlags(specsCmd, &assignee)
	commands.AddReportFlag(specsCmd, &formats)

	return specsCmd
}

func runSpecs(base *commands.BaseCommand, assignee commands.AssigneeArgs, formatNames, args []string) error {
	number, open, err := commands.ParseRequestNumber(args)
	if err != nil {
		return err
	}

	formats, err := report.ParseFormats(formatNames)
	if err != nil {
		return err
	}

	if err := base.Init(); err != nil {
		return err
	}

	hr, err := base.HorizontalReview()
	if err != nil {
		return err
	}

	if hr.Specs == "" {
		return fmt.Errorf("%s has no repository for specs", base.GroupName)
	}

	if open {
		return commands.OpenRequest(base.Context, base.Gh, base.Out(), hr.Specs, number)
	}

	inv, err := review.SpecsQuery(hr.Specs, assignee.Filter()).Build()
	if err != nil {
		return err
	}

	return report.Run(base.Context, base.Runner, review.SpecsReport(inv), formats)
}
