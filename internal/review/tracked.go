package review

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/alan/nu-tracker/internal/github"
	"github.com/alan/nu-tracker/internal/labels"
	"github.com/alan/nu-tracker/internal/report"
)

// UnknownSource is shown when a tracking issue does not link to its source issue
const UnknownSource = "UNKNOWN"

const (
	unknownOrigin = "???"
	botAuthor     = "w3cbot"
)

var sourceLinkPattern = regexp.MustCompile(`§ https://github\.com/([^/\s]+)/([^/\s]+)/(?:issues|pull)/(\d+)`)

// TrackedRequest is a request, tracked in a horizontal review repo, for comments on another
// group's issue or design
type TrackedRequest struct {
	ID        int
	Title     string
	Status    *labels.Status
	Spec      string
	Group     string
	Source    string
	Tracking  github.Locator
	Assignees string
	// Ours is set when the request was raised by a person rather than the tracking bot
	Ours bool
}

// OriginFilter restricts comment requests by who raised them
type OriginFilter int

const (
	// AnyOrigin keeps every request
	AnyOrigin OriginFilter = iota
	// OursOnly keeps requests raised by our group
	OursOnly
	// OthersOnly keeps requests raised for other groups
	OthersOnly
)

// NewOriginFilter builds a filter from the --our and --other flags
func NewOriginFilter(our, other bool) OriginFilter {
	switch {
	case our:
		return OursOnly
	case other:
		return OthersOnly
	default:
		return AnyOrigin
	}
}

func (f OriginFilter) keeps(request TrackedRequest) bool {
	switch f {
	case OursOnly:
		return request.Ours
	case OthersOnly:
		return !request.Ours
	default:
		return true
	}
}

// TrackedOptions control how comment and design requests are shown
type TrackedOptions struct {
	Columns    []Field
	ShowSource bool
	// Spec is set when results were restricted to one spec, making the spec list redundant
	Spec string
}

// TrackedQuery finds requests in a tracking repo. status and notStatus are label names.
func TrackedQuery(repo string, status, notStatus []string, spec string, assignee github.AssigneeFilter) *github.Query {
	query := github.NewQuery()
	if spec != "" {
		query.Label("s:" + spec)
	}
	return query.
		Labels(status...).
		NotLabels(notStatus...).
		Repo(repo).
		Assignee(assignee)
}

type trackedKind struct {
	name     string
	taxonomy *labels.Taxonomy
	spec     labels.OriginParser
	group    labels.OriginParser
}

var (
	commentKind = trackedKind{name: "comments", taxonomy: labels.Comments, spec: labels.CommentSpec, group: labels.CommentGroup}
	designKind  = trackedKind{name: "designs", taxonomy: labels.Designs, spec: labels.DesignSpec, group: labels.DesignGroup}
)

var trackedFields = []string{
	github.FieldAssignees, github.FieldAuthor, github.FieldBody, github.FieldLabels,
	github.FieldNumber, github.FieldRepository, github.FieldTitle,
}

// CommentsReport lists requests for comments on other groups' issues
func CommentsReport(inv github.Invocation, opts TrackedOptions, origin OriginFilter) report.Report[TrackedRequest] {
	return commentKind.report(inv, opts, func(issue github.Issue) (TrackedRequest, error) {
		request := ClassifyComment(issue)
		if !origin.keeps(request) {
			return request, report.ErrSkip
		}
		return request, nil
	})
}

// DesignsReport lists requests for comments on other groups' designs
func DesignsReport(inv github.Invocation, opts TrackedOptions) report.Report[TrackedRequest] {
	return designKind.report(inv, opts, func(issue github.Issue) (TrackedRequest, error) {
		return ClassifyDesign(issue), nil
	})
}

// ClassifyComment reads a comment request's origin and status from its labels
func ClassifyComment(issue github.Issue) TrackedRequest {
	return commentKind.classify(issue)
}

// ClassifyDesign reads a design request's origin and status from its labels
func ClassifyDesign(issue github.Issue) TrackedRequest {
	return designKind.classify(issue)
}

func (k trackedKind) report(inv github.Invocation, opts TrackedOptions, classify func(github.Issue) (TrackedRequest, error)) report.Report[TrackedRequest] {
	return report.Report[TrackedRequest]{
		Name:       k.name,
		Invocation: inv,
		Fields:     trackedFields,
		Classify:   classify,
		Table: func(requests []TrackedRequest) string {
			return trackedTable(requests, opts)
		},
		Meeting: trackedMeeting,
	}
}

func (k trackedKind) classify(issue github.Issue) TrackedRequest {
	request := TrackedRequest{
		ID:        issue.Number,
		Title:     issue.Title,
		Status:    k.taxonomy.NewStatus(),
		Source:    SourceLocator(issue.Body),
		Tracking:  issue.Locator(),
		Assignees: issue.AssigneeList(),
		Ours:      issue.Author.Login != botAuthor,
	}

	for _, name := range issue.LabelNames() {
		if origin, ok := k.group.Parse(name); ok {
			if request.Group != "" {
				slog.Debug("Repeated group label", "request", issue.Number, "previous", request.Group, "label", name)
			}
			request.Group = origin.Value
			continue
		}
		if origin, ok := k.spec.Parse(name); ok {
			if request.Spec != "" {
				slog.Debug("Repeated spec label", "request", issue.Number, "previous", request.Spec, "label", name)
			}
			request.Spec = origin.Value
			continue
		}
		request.Status.Mark(name)
	}

	return request
}

// SourceLocator finds the link to the source issue or PR in a tracking issue's body
func SourceLocator(body string) string {
	matches := sourceLinkPattern.FindStringSubmatch(body)
	if matches == nil {
		return UnknownSource
	}
	return fmt.Sprintf("%s/%s#%s", matches[1], matches[2], matches[3])
}

func (r TrackedRequest) value(field Field) string {
	switch field {
	case FieldAssignees:
		return r.Assignees
	case FieldGroup:
		return orUnknown(r.Group)
	case FieldID:
		return fmt.Sprint(r.ID)
	case FieldOur:
		if r.Ours {
			return "Yes"
		}
		return " - "
	case FieldSource:
		return r.Source
	case FieldSpec:
		return orUnknown(r.Spec)
	case FieldStatus:
		return r.Status.String()
	case FieldTitle:
		return r.Title
	default:
		return ""
	}
}

func orUnknown(value string) string {
	if value == "" {
		return unknownOrigin
	}
	return value
}

func trackedTable(requests []TrackedRequest, opts TrackedOptions) string {
	columns := slices.Clone(opts.Columns)
	if opts.ShowSource && !slices.Contains(columns, FieldSource) {
		columns = append(columns, FieldSource)
	}

	var invalid []report.InvalidRow
	var groups, specs []string
	rows := make([][]string, 0, len(requests))

	for _, request := range requests {
		groups = append(groups, request.Group)
		if opts.Spec == "" {
			specs = append(specs, request.Spec)
		}

		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, request.value(column))
		}
		rows = append(rows, row)

		if !request.Status.IsValid() {
			invalid = append(invalid, report.InvalidRow{
				ID:     request.ID,
				Title:  request.Title,
				Status: request.Status.String(),
			})
		}
	}

	headers := make([]string, 0, len(columns))
	maxWidths := make(map[int]int)
	for i, column := range columns {
		headers = append(headers, strings.ToUpper(string(column)))
		if width, ok := maxFieldWidths[column]; ok {
			maxWidths[i] = width
		}
	}

	var b strings.Builder
	for _, section := range []string{
		report.InvalidStatuses(invalid),
		report.Domains("Groups", groups),
		report.Domains("Specs", specs),
	} {
		if section != "" {
			b.WriteString(section)
			b.WriteString("\n")
		}
	}
	b.WriteString(report.Table(headers, rows, maxWidths))

	return b.String()
}

func trackedMeeting(requests []TrackedRequest) string {
	items := make([]report.MeetingItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, report.MeetingItem{
			Title: request.Title,
			Lines: []string{
				"source: " + request.Source,
				"tracking: " + request.Tracking.URL(),
			},
		})
	}
	return report.Meeting(items)
}
