package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// ErrGhFailed is returned when gh exits unsuccessfully. Its output has already been forwarded.
var ErrGhFailed = errors.New("'gh' did not run successfully")

// Executor runs external commands
type Executor interface {
	// Output runs the command and captures its output
	Output(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
	// Run runs the command attached to the terminal
	Run(ctx context.Context, name string, args ...string) error
}

// RealExecutor runs commands with os/exec
type RealExecutor struct{}

func (e *RealExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

func (e *RealExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// GhClient talks to GitHub through the gh CLI
type GhClient struct {
	executor Executor
	stdout   io.Writer
	stderr   io.Writer
}

// NewGhClient creates a client. Output of failed gh runs is forwarded to stdout and stderr.
func NewGhClient(executor Executor, stdout, stderr io.Writer) *GhClient {
	return &GhClient{
		executor: executor,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Search runs the invocation and decodes the requested fields
func (c *GhClient) Search(ctx context.Context, inv Invocation, fields []string) ([]Issue, error) {
	args := inv.GhArgs(fields)
	slog.Debug("gh: running", "args", args)

	stdout, stderr, err := c.executor.Output(ctx, "gh", args...)
	if err != nil {
		return nil, c.failure(err, stdout, stderr)
	}

	var issues []Issue
	if err := json.Unmarshal(stdout, &issues); err != nil {
		return nil, fmt.Errorf("decoding gh search output: %w", err)
	}

	slog.Debug("gh: search complete", "results", len(issues))
	return issues, nil
}

// Delegate lets gh render the invocation's results itself, in the terminal or in the browser
func (c *GhClient) Delegate(ctx context.Context, inv Invocation, web bool) error {
	args := inv.GhArgs(nil)
	if web {
		args = append(args, "--web")
	}
	return c.run(ctx, args)
}

// Browse opens an issue in the browser
func (c *GhClient) Browse(ctx context.Context, locator Locator) error {
	return c.run(ctx, []string{"browse", strconv.Itoa(locator.Number), "--repo", locator.NameWithOwner()})
}

func (c *GhClient) run(ctx context.Context, args []string) error {
	slog.Debug("gh: running", "args", args)

	if err := c.executor.Run(ctx, "gh", args...); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ErrGhFailed
		}
		return fmt.Errorf("failed to run gh: %w", err)
	}
	return nil
}

func (c *GhClient) failure(err error, stdout, stderr []byte) error {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("failed to run gh: %w", err)
	}

	// gh's own messages are the most useful diagnostic
	_, _ = c.stdout.Write(stdout)
	_, _ = c.stderr.Write(stderr)
	return ErrGhFailed
}
