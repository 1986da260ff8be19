// Package charters implements the charters command for listing charter review requests.
package charters

import (
	"fmt"

	"github.com/alan/nu-tracker/internal/commands"
	"github.com/alan/nu-tracker/internal/labels"
	"github.com/alan/nu-tracker/internal/report"
	"github.com/alan/nu-tracker/internal/review"
	"github.com/spf13/cobra"
)

// NewChartersCmd creates and returns the charters command
func NewChartersCmd(base *commands.BaseCommand) *cobra.Command {
	var status commands.StatusArgs
	var formats []string

	chartersCmd := &cobra.Command{
		Use:   "charters [review-number]",
		Short: "List charter review requests, or open a specific request",
		Long: `List charters awaiting horizontal review, from the charters repository.

Status flags select charters by which groups have completed, or need to resolve,
their reviews; use --status-flags to see them all.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			base.Context = cobraCmd.Context()
			return runCharters(base, status, formats, args)
		},
	}

	commands.AddStatusFlags(chartersCmd, &status)
	commands.AddReportFlag(chartersCmd, &formats)

	return chartersCmd
}

func runCharters(base *commands.BaseCommand, status commands.StatusArgs, formatNames, args []string) error {
	if status.ListFlags {
		fmt.Fprintln(base.Out(), labels.Charters.Describe())
		return nil
	}

	number, open, err := commands.ParseRequestNumber(args)
	if err != nil {
		return err
	}

	formats, err := report.ParseFormats(formatNames)
	if err != nil {
		return err
	}

	with, without, err := status.Labels(labels.Charters)
	if err != nil {
		return err
	}

	if err := base.Init(); err != nil {
		return err
	}

	repo := base.Repos.Charters
	if repo == "" {
		return fmt.Errorf("no charters repository in repos info")
	}

	if open {
		return commands.OpenRequest(base.Context, base.Gh, base.Out(), repo, number)
	}

	inv, err := review.ChartersQuery(repo, with, without).Build()
	if err != nil {
		return err
	}

	return report.Run(base.Context, base.Runner, review.ChartersReport(inv), formats)
}
