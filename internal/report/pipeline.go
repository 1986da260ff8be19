package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/alan/nu-tracker/internal/github"
	"github.com/fatih/color"
)

// ErrSkip is returned by a classifier to drop an issue silently
var ErrSkip = errors.New("skip issue")

// IssueWarning is returned by a classifier when an issue cannot be fully understood.
// The warning is shown to the user. Keep decides whether the issue is still listed.
type IssueWarning struct {
	Number int
	Title  string
	Reason string
	Keep   bool
}

func (w *IssueWarning) Error() string {
	return fmt.Sprintf("%s for request #%d: '%s'", w.Reason, w.Number, w.Title)
}

// UnsupportedFormatError is returned when a report cannot be shown in the requested format
type UnsupportedFormatError struct {
	Format Format
	Report string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%q format is not supported for %s", e.Format, e.Report)
}

// Searcher fetches issues matching an invocation
type Searcher interface {
	Search(ctx context.Context, inv github.Invocation, fields []string) ([]github.Issue, error)
}

// Delegator has gh show an invocation's results itself
type Delegator interface {
	Delegate(ctx context.Context, inv github.Invocation, web bool) error
}

// Runner holds what reports need to fetch and print
type Runner struct {
	Searcher  Searcher
	Delegator Delegator
	Out       io.Writer
	Warn      io.Writer
}

// Report describes how to fetch, classify, sort and render one kind of request
type Report[T any] struct {
	// Name is the plural noun used in messages, e.g. "actions"
	Name       string
	Invocation github.Invocation
	Fields     []string

	Classify func(github.Issue) (T, error)
	Compare  func(a, b T) int

	// Renderers; nil means the format is unsupported
	Table   func([]T) string
	Meeting func([]T) string
	Agenda  func([]T) string

	// DelegateTable has gh print the table instead of Table
	DelegateTable bool
}

func (r Report[T]) delegates(format Format) bool {
	return format.Delegates() || (format == FormatTable && r.DelegateTable)
}

func (r Report[T]) renderer(format Format) func([]T) string {
	switch format {
	case FormatTable:
		return r.Table
	case FormatMeeting:
		return r.Meeting
	case FormatAgenda:
		return r.Agenda
	default:
		return nil
	}
}

func (r Report[T]) supports(format Format) bool {
	return r.delegates(format) || r.renderer(format) != nil
}

// Run shows the report in each format in turn. Issues are fetched at most once, however many
// formats need them; delegating formats hand over to gh every time.
func Run[T any](ctx context.Context, runner *Runner, report Report[T], formats []Format) error {
	for _, format := range formats {
		if !report.supports(format) {
			return &UnsupportedFormatError{Format: format, Report: report.Name}
		}
	}

	var fetched *[]T
	rendered := false

	for _, format := range formats {
		if report.delegates(format) {
			if err := runner.Delegator.Delegate(ctx, report.Invocation, format == FormatWeb); err != nil {
				return err
			}
			continue
		}

		if fetched == nil {
			items, found, err := fetch(ctx, runner, report)
			if err != nil {
				return err
			}
			fetched = &items

			// Counts search results rather than classified items
			if found == 0 {
				fmt.Fprintf(runner.Out, "No %s found\n", report.Name)
			} else {
				fmt.Fprintf(runner.Out, "%s %s\n\n", Showing(found), report.Name)
			}
		}

		if len(*fetched) == 0 {
			continue
		}

		if rendered {
			fmt.Fprintln(runner.Out)
		}
		fmt.Fprintln(runner.Out, report.renderer(format)(*fetched))
		rendered = true
	}

	return nil
}

// fetch returns the classified items along with the number of search results they came from
func fetch[T any](ctx context.Context, runner *Runner, report Report[T]) ([]T, int, error) {
	issues, err := runner.Searcher.Search(ctx, report.Invocation, report.Fields)
	if err != nil {
		return nil, 0, err
	}

	warn := color.New(color.FgYellow).SprintFunc()
	items := make([]T, 0, len(issues))

	for _, issue := range issues {
		item, err := report.Classify(issue)

		var warning *IssueWarning
		switch {
		case err == nil:
			items = append(items, item)
		case errors.Is(err, ErrSkip):
			slog.Debug("Skipping issue", "report", report.Name, "number", issue.Number)
		case errors.As(err, &warning):
			fmt.Fprintf(runner.Warn, "%s %s\n", warn("WARNING:"), warning.Error())
			if warning.Keep {
				items = append(items, item)
			}
		default:
			return nil, 0, fmt.Errorf("failed to classify issue #%d: %w", issue.Number, err)
		}
	}

	if report.Compare != nil {
		slices.SortStableFunc(items, report.Compare)
	}

	return items, len(issues), nil
}

// Showing describes how many results are shown, noting when the search limit was reached
func Showing(count int) string {
	if count >= github.SearchLimit {
		return fmt.Sprintf("Showing the top %d", github.SearchLimit)
	}
	return fmt.Sprintf("Showing %d", count)
}
