// Package browse implements the browse command for opening a GitHub issue in the browser.
package browse

import (
	"github.com/alan/nu-tracker/internal/commands"
	"github.com/spf13/cobra"
)

// NewBrowseCmd creates and returns the browse command
func NewBrowseCmd(base *commands.BaseCommand) *cobra.Command {
	return &cobra.Command{
		Use:          "browse <owner/repo#number>",
		Short:        "Open a specific GitHub issue in your browser",
		Example:      "  nt browse w3c/apa#42",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			base.Context = cobraCmd.Context()
			if err := base.Init(); err != nil {
				return err
			}
			return commands.OpenLocator(base.Context, base.Gh, base.Out(), args[0])
		},
	}
}
