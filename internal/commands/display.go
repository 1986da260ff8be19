package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alan/nu-tracker/internal/github"
	"github.com/fatih/color"
)

// Browser opens a GitHub issue in the user's browser
type Browser interface {
	Browse(ctx context.Context, locator github.Locator) error
}

// formatInvalidLocator creates a standardized message for a locator that could not be parsed
func formatInvalidLocator(text string) string {
	return fmt.Sprintf("Invalid issue locator: %s\n", text)
}

// formatOpening creates the message shown before opening an issue
func formatOpening(locator github.Locator) string {
	return fmt.Sprintf("Opening: %s\n", locator.URL())
}

// OpenLocator opens the issue at text, e.g. "w3c/apa#42". An unparseable locator is reported
// but is not an error.
func OpenLocator(ctx context.Context, browser Browser, out io.Writer, text string) error {
	locator, err := github.ParseLocator(text)
	if errors.Is(err, github.ErrInvalidLocator) {
		fmt.Fprint(out, formatInvalidLocator(text))
		return nil
	}
	if err != nil {
		return err
	}

	return OpenIssue(ctx, browser, out, locator)
}

// OpenRequest opens issue number in repo ("owner/name")
func OpenRequest(ctx context.Context, browser Browser, out io.Writer, repo string, number int) error {
	return OpenLocator(ctx, browser, out, fmt.Sprintf("%s#%d", repo, number))
}

// OpenIssue announces and opens an issue
func OpenIssue(ctx context.Context, browser Browser, out io.Writer, locator github.Locator) error {
	fmt.Fprint(out, formatOpening(locator))
	if err := browser.Browse(ctx, locator); err != nil {
		return fmt.Errorf("failed to open %s: %w", locator, err)
	}
	return nil
}

// DisplayNotice prints a highlighted informational message
func DisplayNotice(out io.Writer, format string, args ...any) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintln(out, yellow(fmt.Sprintf(format, args...)))
}

// DisplaySuccess prints a message confirming a settings change
func DisplaySuccess(out io.Writer, format string, args ...any) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintln(out, green(fmt.Sprintf(format, args...)))
}
