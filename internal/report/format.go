// Package report fetches, classifies, sorts and renders review-tracking reports.
package report

import (
	"fmt"
	"strings"
)

// Format is a way of presenting a report
type Format string

const (
	// FormatTable prints an aligned table in the terminal
	FormatTable Format = "table"
	// FormatMeeting prints IRC commands for scribing the items in a meeting
	FormatMeeting Format = "meeting"
	// FormatAgenda prints a numbered list for a meeting agenda
	FormatAgenda Format = "agenda"
	// FormatWeb opens the search in the browser
	FormatWeb Format = "web"
	// FormatGh lets gh print its own results table
	FormatGh Format = "gh"
)

// Formats lists every format in the order they are offered to users
var Formats = []Format{FormatTable, FormatMeeting, FormatAgenda, FormatWeb, FormatGh}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	for _, format := range Formats {
		if string(format) == s {
			return format, nil
		}
	}
	return "", fmt.Errorf("invalid report format %q (valid: %s)", s, FormatNames())
}

// ParseFormats converts each string to a Format
func ParseFormats(values []string) ([]Format, error) {
	formats := make([]Format, 0, len(values))
	for _, value := range values {
		format, err := ParseFormat(value)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}

// FormatNames lists valid format names, comma-separated
func FormatNames() string {
	names := make([]string, 0, len(Formats))
	for _, format := range Formats {
		names = append(names, string(format))
	}
	return strings.Join(names, ", ")
}

// Delegates reports whether the format is produced by gh itself rather than from fetched data
func (f Format) Delegates() bool {
	return f == FormatWeb || f == FormatGh
}
