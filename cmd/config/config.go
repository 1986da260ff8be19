// Package config implements the config command for showing and updating nu-tracker settings.
package config

import (
	"fmt"
	"slices"

	"github.com/alan/nu-tracker/internal/commands"
	"github.com/alan/nu-tracker/internal/config"
	"github.com/alan/nu-tracker/internal/review"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates and returns the config command
func NewConfigCmd(base *commands.BaseCommand) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage settings",
		Long: `Show the configuration directory, get or set the default group and table
columns, or print the built-in repository info.

Settings are kept in settings.yaml in the configuration directory.`,
	}

	configCmd.AddCommand(newShowDirCmd(base))
	configCmd.AddCommand(newGroupCmd(base))
	configCmd.AddCommand(newColumnsCmd(base, columnsSetting{
		use:      "comment-columns",
		noun:     "comment",
		fields:   review.CommentFields,
		defaults: review.DefaultCommentColumns,
		get:      func(c *commands.BaseCommand) *[]string { return &c.Settings.CommentColumns },
	}))
	configCmd.AddCommand(newColumnsCmd(base, columnsSetting{
		use:      "design-columns",
		noun:     "design",
		fields:   review.DesignFields,
		defaults: review.DefaultDesignColumns,
		get:      func(c *commands.BaseCommand) *[]string { return &c.Settings.DesignColumns },
	}))
	configCmd.AddCommand(newReposInfoCmd(base))

	return configCmd
}

func newShowDirCmd(base *commands.BaseCommand) *cobra.Command {
	return &cobra.Command{
		Use:          "show-dir",
		Short:        "Show the configuration directory path (without creating it)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			configDir := ""
			if base.ConfigDir != nil {
				configDir = *base.ConfigDir
			}
			dir, err := config.Dir(configDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(base.Out(), dir)
			return nil
		},
	}
}

func newGroupCmd(base *commands.BaseCommand) *cobra.Command {
	return &cobra.Command{
		Use:          "group [group]",
		Short:        "Get or set the default group",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := base.LoadConfig(); err != nil {
				return err
			}
			if len(args) == 0 {
				showGroup(base)
				return nil
			}
			return setGroup(base, args[0])
		},
	}
}

func showGroup(base *commands.BaseCommand) {
	fmt.Fprintf(base.Out(), "Default group is: '%s'\n", base.Settings.Group)
	commands.DisplayNotice(base.Out(), "You can override this temporarily via the --as option.")
}

func setGroup(base *commands.BaseCommand, group string) error {
	if base.Settings.Group == group {
		fmt.Fprintf(base.Out(), "Default group is already '%s'\n", group)
		return nil
	}

	if _, ok := base.Repos.Groups[group]; !ok {
		return &commands.UnknownGroupError{Group: group, Known: base.Repos.GroupNames()}
	}

	base.Settings.Group = group
	if err := base.SaveSettingsWithErrorHandling(); err != nil {
		return err
	}

	commands.DisplaySuccess(base.Out(), "Default group is now '%s'", group)
	return nil
}

// columnsSetting describes one of the column settings
type columnsSetting struct {
	use      string
	noun     string
	fields   []review.Field
	defaults []review.Field
	get      func(*commands.BaseCommand) *[]string
}

func newColumnsCmd(base *commands.BaseCommand, setting columnsSetting) *cobra.Command {
	return &cobra.Command{
		Use:   setting.use + " [field...]",
		Short: fmt.Sprintf("Get or set the default columns for the %ss table", setting.noun),
		Long: fmt.Sprintf(`Get or set the default columns for the %ss table.

Columns are shown in the given order. Valid fields: %s`, setting.noun, review.JoinFields(setting.fields)),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := base.LoadConfig(); err != nil {
				return err
			}
			if len(args) == 0 {
				return showColumns(base, setting)
			}
			return setColumns(base, setting, args)
		},
	}
}

func showColumns(base *commands.BaseCommand, setting columnsSetting) error {
	columns, err := commands.ResolveColumns(nil, *setting.get(base), setting.fields, setting.defaults)
	if err != nil {
		return err
	}
	fmt.Fprintf(base.Out(), "Default %s columns are: %s\n", setting.noun, review.JoinFields(columns))
	return nil
}

func setColumns(base *commands.BaseCommand, setting columnsSetting, names []string) error {
	columns, err := review.ParseFields(names, setting.fields)
	if err != nil {
		return err
	}

	current := setting.get(base)
	updated := review.FieldNames(columns)
	if slices.Equal(*current, updated) {
		fmt.Fprintf(base.Out(), "Default %s columns are already: %s\n", setting.noun, review.JoinFields(columns))
		return nil
	}

	*current = updated
	if err := base.SaveSettingsWithErrorHandling(); err != nil {
		return err
	}

	commands.DisplaySuccess(base.Out(), "Default %s columns are now: %s", setting.noun, review.JoinFields(columns))
	return nil
}

func newReposInfoCmd(base *commands.BaseCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "repos-info",
		Short: "Print out the default repository info in TOML format",
		Long: `Print out the built-in repository info in TOML format.

Save it to a file, edit it, and load it with --repos-file to work with groups or
repositories nu-tracker doesn't know about yet.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprint(base.Out(), config.DefaultReposTOML())
			return nil
		},
	}
}
