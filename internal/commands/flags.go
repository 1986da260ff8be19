package commands

import (
	"fmt"

	"github.com/alan/nu-tracker/internal/report"
	"github.com/spf13/cobra"
)

// AddRepoFlags adds the flags selecting which of the group's repos to query
func AddRepoFlags(cobraCmd *cobra.Command, sel *RepoSelection) {
	cobraCmd.Flags().BoolVarP(&sel.Group, "group", "g", false, "Include the group's repos")
	cobraCmd.Flags().StringSliceVarP(&sel.TaskForces, "tf", "t", nil, "Include these TFs' repos")
	cobraCmd.Flags().BoolVarP(&sel.AllTaskForces, "all-tfs", "T", false, "Include all TFs' repos")
	cobraCmd.Flags().BoolVarP(&sel.MainOnly, "main", "m", false, "Include main group/TF repos only")
	cobraCmd.MarkFlagsOneRequired("group", "tf", "all-tfs")
	cobraCmd.MarkFlagsMutuallyExclusive("tf", "all-tfs")
}

// AddAssigneeFlags adds the -u/--assignee and -U/--no-assignee flags
func AddAssigneeFlags(cobraCmd *cobra.Command, args *AssigneeArgs) {
	cobraCmd.Flags().StringVarP(&args.User, "assignee", "u", "", "Only those assigned to USER (use '@me' for yourself)")
	cobraCmd.Flags().BoolVarP(&args.NoAssignee, "no-assignee", "U", false, "Only those without assignees")
	cobraCmd.MarkFlagsMutuallyExclusive("assignee", "no-assignee")
}

// AddStatusFlags adds the -f, -s and -S flags for a status taxonomy
func AddStatusFlags(cobraCmd *cobra.Command, args *StatusArgs) {
	cobraCmd.Flags().BoolVarP(&args.ListFlags, "status-flags", "f", false, "List known status flags, and their corresponding labels")
	cobraCmd.Flags().StringVarP(&args.Status, "status", "s", "", "Query issues with these status labels, by flag letter(s) (e.g. 'TAP')")
	cobraCmd.Flags().StringVarP(&args.NotStatus, "not-status", "S", "", "Query issues without these status labels, by flag letter(s)")
}

// AddReportFlag adds the -r/--report flag
func AddReportFlag(cobraCmd *cobra.Command, formats *[]string) {
	cobraCmd.Flags().StringSliceVarP(formats, "report", "r", []string{string(report.FormatTable)},
		fmt.Sprintf("Report formats, shown in turn (%s)", report.FormatNames()))
}
