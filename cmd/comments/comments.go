// Package comments implements the comments and designs commands for listing horizontal review
// requests tracked in a group's repositories.
package comments

import (
	"fmt"

	"github.com/alan/nu-tracker/cmd"
	"github.com/alan/nu-tracker/internal/commands"
	"github.com/alan/nu-tracker/internal/github"
	"github.com/alan/nu-tracker/internal/labels"
	"github.com/alan/nu-tracker/internal/report"
	"github.com/alan/nu-tracker/internal/review"
	"github.com/spf13/cobra"
)

type options struct {
	status     commands.StatusArgs
	spec       string
	assignee   commands.AssigneeArgs
	showSource bool
	columns    []string
	formats    []string
	our        bool
	other      bool
}

// NewCommentsCmd creates and returns the comments command
func NewCommentsCmd(base *commands.BaseCommand) *cobra.Command {
	var opts options

	commentsCmd := &cobra.Command{
		Use:   "comments [request-number]",
		Short: "List requests for comments on other groups' issues",
		Long: `List requests for comments on other groups' issues, or open a specific request.

Requests are tracked in the group's comments repository. Status flags select
requests by their status labels; use --status-flags to see them all.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			base.Context = cobraCmd.Context()
			return runComments(base, &opts, args)
		},
	}

	addSharedFlags(commentsCmd, &opts, review.CommentFields)
	commentsCmd.Flags().BoolVarP(&opts.our, "our", "o", false, "Only issues originating from our group")
	commentsCmd.Flags().BoolVarP(&opts.other, "other", "O", false, "Only issues originating from other groups")
	commentsCmd.MarkFlagsMutuallyExclusive("our", "other")

	return commentsCmd
}

// NewDesignsCmd creates and returns the designs command
func NewDesignsCmd(base *commands.BaseCommand) *cobra.Command {
	var opts options

	designsCmd := &cobra.Command{
		Use:   "designs [request-number]",
		Short: "List requests for comments on other groups' designs",
		Long: `List requests for comments on other groups' designs, or open a specific request.

Requests are tracked in the group's designs repository. Status flags select
requests by their status labels; use --status-flags to see them all.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			base.Context = cobraCmd.Context()
			return runDesigns(base, &opts, args)
		},
	}

	addSharedFlags(designsCmd, &opts, review.DesignFields)

	return designsCmd
}

// addSharedFlags adds the flags common to comments and designs
func addSharedFlags(cobraCmd *cobra.Command, opts *options, fields []review.Field) {
	commands.AddStatusFlags(cobraCmd, &opts.status)
	commands.AddAssigneeFlags(cobraCmd, &opts.assignee)
	commands.AddReportFlag(cobraCmd, &opts.formats)
	cobraCmd.Flags().StringVarP(&opts.spec, "spec", "p", "", "Filter by spec, or spec group (e.g. 'open-ui')")
	cobraCmd.Flags().BoolVarP(&opts.showSource, "show-source", "i", false, "Show the source issue column in the table")
	cobraCmd.Flags().StringSliceVarP(&opts.columns, "columns", "c", nil,
		fmt.Sprintf("Columns to include in the table, overriding settings (%s)", review.JoinFields(fields)))
}

func runComments(base *commands.BaseCommand, opts *options, args []string) error {
	run, err := prepare(base, opts, args, labels.Comments, func(hr *cmd.HorizontalReview) string { return hr.Comments })
	if err != nil || run == nil {
		return err
	}

	columns, err := commands.ResolveColumns(opts.columns, base.Settings.CommentColumns,
		review.CommentFields, review.DefaultCommentColumns)
	if err != nil {
		return err
	}

	rep := review.CommentsReport(run.inv, trackedOptions(opts, columns), review.NewOriginFilter(opts.our, opts.other))
	return report.Run(base.Context, base.Runner, rep, run.formats)
}

func runDesigns(base *commands.BaseCommand, opts *options, args []string) error {
	run, err := prepare(base, opts, args, labels.Designs, func(hr *cmd.HorizontalReview) string { return hr.Designs })
	if err != nil || run == nil {
		return err
	}

	columns, err := commands.ResolveColumns(opts.columns, base.Settings.DesignColumns,
		review.DesignFields, review.DefaultDesignColumns)
	if err != nil {
		return err
	}

	return report.Run(base.Context, base.Runner, review.DesignsReport(run.inv, trackedOptions(opts, columns)), run.formats)
}

type prepared struct {
	formats []report.Format
	inv     github.Invocation
}

// prepare does what comments and designs have in common. It returns nil when there is nothing
// left to do: the flags were listed or a request was opened.
func prepare(base *commands.BaseCommand, opts *options, args []string, taxonomy *labels.Taxonomy,
	trackingRepo func(*cmd.HorizontalReview) string) (*prepared, error) {
	if opts.status.ListFlags {
		fmt.Fprintln(base.Out(), taxonomy.Describe())
		return nil, nil
	}

	number, open, err := commands.ParseRequestNumber(args)
	if err != nil {
		return nil, err
	}

	formats, err := report.ParseFormats(opts.formats)
	if err != nil {
		return nil, err
	}

	if err := base.Init(); err != nil {
		return nil, err
	}

	hr, err := base.HorizontalReview()
	if err != nil {
		return nil, err
	}

	repo := trackingRepo(hr)
	if repo == "" {
		return nil, fmt.Errorf("%s has no repository for %s", base.GroupName, taxonomy.Name())
	}

	if open {
		return nil, commands.OpenRequest(base.Context, base.Gh, base.Out(), repo, number)
	}

	status, notStatus, err := opts.status.Labels(taxonomy)
	if err != nil {
		return nil, err
	}

	inv, err := review.TrackedQuery(repo, status, notStatus, opts.spec, opts.assignee.Filter()).Build()
	if err != nil {
		return nil, err
	}

	return &prepared{formats: formats, inv: inv}, nil
}

func trackedOptions(opts *options, columns []review.Field) review.TrackedOptions {
	return review.TrackedOptions{
		Columns:    columns,
		ShowSource: opts.showSource,
		Spec:       opts.spec,
	}
}
