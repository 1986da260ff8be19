// package main is the entry point for the nt tool
package main

import (
	"log/slog"
	"os"

	"github.com/alan/nu-tracker/cmd/browse"
	"github.com/alan/nu-tracker/cmd/charters"
	"github.com/alan/nu-tracker/cmd/comments"
	configcmd "github.com/alan/nu-tracker/cmd/config"
	"github.com/alan/nu-tracker/cmd/issues"
	"github.com/alan/nu-tracker/cmd/specs"
	"github.com/alan/nu-tracker/internal/commands"
	"github.com/alan/nu-tracker/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var configDir string
	var reposFile string
	var asGroup string
	var backend string
	var logLevel string
	var logFormat string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "nt",
		Short: "Nu Tracker: Track W3C actions and horizontal review requests",
		Long: `nt queries GitHub for a W3C group's issues, actions and horizontal review
requests, and reports on them as tables, meeting scripts or agendas.

Searches run through the gh CLI, which must be installed and authenticated.
Use --backend api to search with the GitHub API and a GITHUB_TOKEN instead.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logLevel = "debug"
			}
			setupLogger(logLevel, logFormat)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (defaults to nu-tracker in the user config directory)")
	rootCmd.PersistentFlags().StringVar(&reposFile, "repos-file", "", "Load repository info from a custom TOML file (see 'nt config repos-info')")
	rootCmd.PersistentFlags().StringVar(&asGroup, "as", "", "Operate from the perspective of GROUP (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "gh", "Search backend (gh, api)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode (logs the gh command line etc.)")

	base := &commands.BaseCommand{
		ConfigDir:    &configDir,
		ReposFile:    &reposFile,
		AsGroup:      &asGroup,
		Backend:      &backend,
		LoadSettings: config.LoadSettings,
		SaveSettings: config.SaveSettings,
		LoadRepos:    config.LoadRepos,
	}

	rootCmd.AddCommand(issues.NewIssuesCmd(base))
	rootCmd.AddCommand(issues.NewActionsCmd(base))
	rootCmd.AddCommand(comments.NewCommentsCmd(base))
	rootCmd.AddCommand(comments.NewDesignsCmd(base))
	rootCmd.AddCommand(specs.NewSpecsCmd(base))
	rootCmd.AddCommand(charters.NewChartersCmd(base))
	rootCmd.AddCommand(browse.NewBrowseCmd(base))
	rootCmd.AddCommand(configcmd.NewConfigCmd(base))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// Reports go to stdout
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
