// Package commandstest provides a BaseCommand wired to a fake gh, for testing commands.
package commandstest

import (
	"bytes"
	"context"
	"testing"

	"github.com/alan/nu-tracker/internal/commands"
	"github.com/alan/nu-tracker/internal/config"
	"github.com/spf13/cobra"
)

// Executor records gh invocations and returns canned output
type Executor struct {
	Stdout []byte
	Stderr []byte
	Err    error

	Calls [][]string
}

// Output records the call and returns the canned output
func (e *Executor) Output(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	e.Calls = append(e.Calls, append([]string{name}, args...))
	return e.Stdout, e.Stderr, e.Err
}

// Run records the call
func (e *Executor) Run(_ context.Context, name string, args ...string) error {
	e.Calls = append(e.Calls, append([]string{name}, args...))
	return e.Err
}

// Base is a BaseCommand with its fake gh and captured output
type Base struct {
	*commands.BaseCommand
	Exec *Executor
	Out  *bytes.Buffer
	Err  *bytes.Buffer
}

// NewBase returns a base command using a temporary config dir and the built-in repos info.
// Searches return searchOutput.
func NewBase(t testing.TB, searchOutput string) *Base {
	t.Helper()

	configDir := t.TempDir()
	var reposFile, asGroup, backend string
	exec := &Executor{Stdout: []byte(searchOutput)}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return &Base{
		BaseCommand: &commands.BaseCommand{
			ConfigDir:    &configDir,
			ReposFile:    &reposFile,
			AsGroup:      &asGroup,
			Backend:      &backend,
			LoadSettings: config.LoadSettings,
			SaveSettings: config.SaveSettings,
			LoadRepos:    config.LoadRepos,
			Executor:     exec,
			Stdout:       out,
			Stderr:       errOut,
		},
		Exec: exec,
		Out:  out,
		Err:  errOut,
	}
}

// Execute runs cobraCmd with args
func Execute(cobraCmd *cobra.Command, args ...string) error {
	cobraCmd.SetArgs(args)
	cobraCmd.SetOut(&bytes.Buffer{})
	cobraCmd.SetErr(&bytes.Buffer{})
	return cobraCmd.Execute()
}
