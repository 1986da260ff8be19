package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alan/nu-tracker/cmd"
	"github.com/alan/nu-tracker/internal/config"
	"github.com/alan/nu-tracker/internal/github"
	"github.com/alan/nu-tracker/internal/report"
)

// ErrNotHorizontalReview is returned when a command needs a horizontal review group's repos
var ErrNotHorizontalReview = errors.New("not a horizontal review group")

// UnknownGroupError is returned when the group to operate as is not in the repos info
type UnknownGroupError struct {
	Group        string
	Known        []string
	FromSettings bool
}

func (e *UnknownGroupError) Error() string {
	source := "given on command line"
	if e.FromSettings {
		source = "specified in settings file"
	}
	return fmt.Sprintf("unknown group name %s: '%s' (known groups are: %s)", source, e.Group, quoteAll(e.Known))
}

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	ConfigDir    *string
	ReposFile    *string
	AsGroup      *string
	Backend      *string
	LoadSettings func(string) (*cmd.Settings, error)
	SaveSettings func(string, *cmd.Settings) error
	LoadRepos    func(string) (*cmd.Repos, error)

	// Optional; the real gh, stdout and stderr are used when nil
	Executor github.Executor
	Stdout   io.Writer
	Stderr   io.Writer

	Context   context.Context
	Dir       string
	Settings  *cmd.Settings
	Repos     *cmd.Repos
	GroupName string
	Group     cmd.GroupRepos
	Gh        *github.GhClient
	Runner    *report.Runner
}

// LoadConfig loads settings and repos info, without resolving the group
func (bc *BaseCommand) LoadConfig() error {
	if bc.Stdout == nil {
		bc.Stdout = os.Stdout
	}
	if bc.Stderr == nil {
		bc.Stderr = os.Stderr
	}
	if bc.Context == nil {
		bc.Context = context.Background()
	}

	dir, err := config.Dir(deref(bc.ConfigDir))
	if err != nil {
		return err
	}
	bc.Dir = dir

	settings, err := bc.LoadSettings(bc.SettingsFile())
	if err != nil {
		return err
	}
	bc.Settings = settings

	repos, err := bc.LoadRepos(deref(bc.ReposFile))
	if err != nil {
		return err
	}
	bc.Repos = repos

	return nil
}

// Init initializes the base command with common setup
func (bc *BaseCommand) Init() error {
	if err := bc.LoadConfig(); err != nil {
		return err
	}

	if err := bc.resolveGroup(); err != nil {
		return err
	}
	slog.Debug("Operating from the perspective of group", "group", bc.GroupName)

	executor := bc.Executor
	if executor == nil {
		executor = &github.RealExecutor{}
	}
	bc.Gh = github.NewGhClient(executor, bc.Stdout, bc.Stderr)

	searcher, err := bc.searcher()
	if err != nil {
		return err
	}

	bc.Runner = &report.Runner{
		Searcher:  searcher,
		Delegator: bc.Gh,
		Out:       bc.Stdout,
		Warn:      bc.Stderr,
	}

	return nil
}

// resolveGroup picks the group from --as, falling back to the settings file
func (bc *BaseCommand) resolveGroup() error {
	name := deref(bc.AsGroup)
	fromSettings := name == ""
	if fromSettings {
		name = bc.Settings.Group
	}

	group, ok := bc.Repos.Groups[name]
	if !ok {
		return &UnknownGroupError{Group: name, Known: bc.Repos.GroupNames(), FromSettings: fromSettings}
	}

	bc.GroupName = name
	bc.Group = group
	return nil
}

func (bc *BaseCommand) searcher() (report.Searcher, error) {
	name := deref(bc.Backend)
	if name == "" {
		name = string(cmd.BackendGh)
	}

	backend, ok := cmd.ParseBackend(name)
	if !ok {
		return nil, fmt.Errorf("invalid backend %q (valid: gh, api)", name)
	}

	if backend == cmd.BackendAPI {
		token, err := getGitHubToken()
		if err != nil {
			return nil, err
		}
		return github.NewAPIClient(bc.Context, token), nil
	}

	return bc.Gh, nil
}

// getGitHubToken retrieves and validates the GitHub token
func getGitHubToken() (string, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return "", fmt.Errorf("GITHUB_TOKEN environment variable is required for the api backend")
	}
	return token, nil
}

// Out returns where command output goes
func (bc *BaseCommand) Out() io.Writer {
	if bc.Stdout == nil {
		return os.Stdout
	}
	return bc.Stdout
}

// SettingsFile returns the settings file path within the config directory
func (bc *BaseCommand) SettingsFile() string {
	return filepath.Join(bc.Dir, config.SettingsFile)
}

// SaveSettingsWithErrorHandling saves the settings with standardized error handling
func (bc *BaseCommand) SaveSettingsWithErrorHandling() error {
	if err := bc.SaveSettings(bc.SettingsFile(), bc.Settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// HorizontalReview returns the group's horizontal review repos
func (bc *BaseCommand) HorizontalReview() (*cmd.HorizontalReview, error) {
	if bc.Group.HorizontalReview == nil {
		return nil, fmt.Errorf("%s is %w", bc.GroupName, ErrNotHorizontalReview)
	}
	return bc.Group.HorizontalReview, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func quoteAll(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, "'"+name+"'")
	}
	return strings.Join(quoted, ", ")
}
