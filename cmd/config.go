// Package cmd defines core data structures for nu-tracker settings and repository topology.
package cmd

import (
	"maps"
	"slices"
)

// DefaultGroup is the group used until the user picks another
const DefaultGroup = "apa"

// SettingsVersion is the current settings file format version
const SettingsVersion = 1

// Backend selects how searches reach GitHub
type Backend string

const (
	// BackendGh runs searches through the gh CLI
	BackendGh Backend = "gh"
	// BackendAPI runs searches through the GitHub REST API, authenticated with GITHUB_TOKEN
	BackendAPI Backend = "api"
)

// ParseBackend converts a string to Backend
func ParseBackend(s string) (Backend, bool) {
	switch s {
	case "gh":
		return BackendGh, true
	case "api":
		return BackendAPI, true
	default:
		return "", false
	}
}

// Settings represents the structure of settings.yaml
type Settings struct {
	Version        int      `yaml:"version"`
	Group          string   `yaml:"group"`
	CommentColumns []string `yaml:"comment_columns,omitempty"`
	DesignColumns  []string `yaml:"design_columns,omitempty"`
}

// DefaultSettings returns settings for a first run
func DefaultSettings() *Settings {
	return &Settings{
		Version: SettingsVersion,
		Group:   DefaultGroup,
	}
}

// Repos represents the structure of repos.toml: every known group, its task forces, and the
// repositories belonging to all of them
type Repos struct {
	Version  int                   `toml:"version"`
	Charters string                `toml:"charters"`
	Groups   map[string]GroupRepos `toml:"groups"`
}

// GroupRepos holds a group's repositories, and those of its task forces
type GroupRepos struct {
	HorizontalReview *HorizontalReview            `toml:"horizontal_review,omitempty"`
	WorkingGroup     MainAndOtherRepos            `toml:"working_group"`
	TaskForces       map[string]MainAndOtherRepos `toml:"task_forces,omitempty"`
}

// HorizontalReview names the tracking repositories of a horizontal review group
type HorizontalReview struct {
	Specs    string `toml:"specs"`
	Comments string `toml:"comments"`
	Designs  string `toml:"designs,omitempty"`
}

// MainAndOtherRepos holds the main repository of a group or task force, and any others
type MainAndOtherRepos struct {
	Main   string   `toml:"main"`
	Others []string `toml:"others,omitempty"`
}

// GroupNames returns the known group names, sorted
func (r *Repos) GroupNames() []string {
	return slices.Sorted(maps.Keys(r.Groups))
}

// TaskForceNames returns the group's task force names, sorted
func (g GroupRepos) TaskForceNames() []string {
	return slices.Sorted(maps.Keys(g.TaskForces))
}

// All returns the main repository followed by the others
func (m MainAndOtherRepos) All() []string {
	return append([]string{m.Main}, m.Others...)
}
