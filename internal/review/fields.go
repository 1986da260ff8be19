package review

import (
	"fmt"
	"slices"
	"strings"
)

// Field is a column that can be shown for comment and design review requests
type Field string

const (
	// FieldAssignees is the assigned users
	FieldAssignees Field = "assignees"
	// FieldGroup is the group the request is from or relates to
	FieldGroup Field = "group"
	// FieldID is the tracking issue's number
	FieldID Field = "id"
	// FieldOur says whether the issue comes from our group (comments only)
	FieldOur Field = "our"
	// FieldSource is the source issue
	FieldSource Field = "source"
	// FieldSpec is the spec the request relates to
	FieldSpec Field = "spec"
	// FieldStatus is the request's status flags
	FieldStatus Field = "status"
	// FieldTitle is the request's title
	FieldTitle Field = "title"
)

// CommentFields are the fields available for comment review requests
var CommentFields = []Field{FieldAssignees, FieldGroup, FieldID, FieldOur, FieldSource, FieldSpec, FieldStatus, FieldTitle}

// DesignFields are the fields available for design review requests
var DesignFields = []Field{FieldAssignees, FieldGroup, FieldID, FieldSource, FieldSpec, FieldStatus, FieldTitle}

// Default columns, used until the user picks their own
var (
	DefaultCommentColumns = []Field{FieldID, FieldTitle, FieldGroup, FieldSpec, FieldStatus, FieldAssignees}
	DefaultDesignColumns  = []Field{FieldID, FieldTitle, FieldGroup, FieldSpec, FieldStatus, FieldAssignees}
)

var maxFieldWidths = map[Field]int{
	FieldAssignees: 15,
	FieldGroup:     11,
	FieldSpec:      15,
}

// ParseFields converts names to fields, accepting only those in valid
func ParseFields(names []string, valid []Field) ([]Field, error) {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		field := Field(strings.ToLower(strings.TrimSpace(name)))
		if !slices.Contains(valid, field) {
			return nil, fmt.Errorf("invalid field %q (valid: %s)", name, JoinFields(valid))
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// JoinFields lists fields comma-separated
func JoinFields(fields []Field) string {
	return strings.Join(FieldNames(fields), ", ")
}

// FieldNames converts fields to plain strings, e.g. for saving in settings
func FieldNames(fields []Field) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, string(field))
	}
	return names
}
