// Package config provides functions for loading and saving nu-tracker settings and repository info.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/alan/nu-tracker/cmd"
	"gopkg.in/yaml.v3"
)

// File and directory names
const (
	DirName      = "nu-tracker"
	SettingsFile = "settings.yaml"
	ReposFile    = "repos.toml"
)

//go:embed repos.toml
var defaultRepos []byte

// Dir returns the configuration directory: override if given, or a nu-tracker directory in the
// user's configuration directory
func Dir(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find user config directory: %w", err)
	}
	return filepath.Join(base, DirName), nil
}

// LoadSettings loads settings from the specified file. A missing file yields default settings.
func LoadSettings(filename string) (*cmd.Settings, error) {
	data, err := os.ReadFile(filename) //nolint:gosec // Settings path is derived from the config dir flag
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No settings file; using defaults", "file", filename)
		return cmd.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := cmd.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if settings.Version != cmd.SettingsVersion {
		slog.Warn("Settings file version doesn't match the latest version",
			"file", filename, "version", settings.Version, "latest", cmd.SettingsVersion)
	}
	if settings.Group == "" {
		settings.Group = cmd.DefaultGroup
	}

	return settings, nil
}

// SaveSettings saves settings to the specified file, creating its directory if needed
func SaveSettings(filename string, settings *cmd.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// LoadRepos loads repository info from the specified file, or the built-in info if filename is empty
func LoadRepos(filename string) (*cmd.Repos, error) {
	builtIn, err := DefaultRepos()
	if err != nil {
		return nil, err
	}
	if filename == "" {
		return builtIn, nil
	}

	var repos cmd.Repos
	if _, err := toml.DecodeFile(filename, &repos); err != nil {
		return nil, fmt.Errorf("failed to parse repos file: %w", err)
	}

	if len(repos.Groups) == 0 {
		return nil, fmt.Errorf("repos file %s defines no groups", filename)
	}

	if repos.Version < builtIn.Version {
		slog.Warn("Repos file is older than the built-in repository info; consider contributing any additions, "+
			"then updating your copy from 'nt config repos-info'",
			"file", filename, "version", repos.Version, "latest", builtIn.Version)
	}

	return &repos, nil
}

// DefaultRepos decodes the built-in repository info
func DefaultRepos() (*cmd.Repos, error) {
	var repos cmd.Repos
	if _, err := toml.NewDecoder(bytes.NewReader(defaultRepos)).Decode(&repos); err != nil {
		return nil, fmt.Errorf("failed to parse built-in repos: %w", err)
	}
	return &repos, nil
}

// DefaultReposTOML returns the built-in repository info as written
func DefaultReposTOML() string {
	return string(defaultRepos)
}
