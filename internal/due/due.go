// Package due extracts due dates embedded in issue titles and bodies.
package due

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the ISO layout used in titles, bodies and reports
const DateLayout = "2006-01-02"

const legacyLayout = "2 Jan 2006"

// DefaultReviewDays is the review window granted when a spec review title gives only the filing date
const DefaultReviewDays = 21

// Info on date formats: https://github.com/w3c/GHURLBot/issues/5
var (
	currentDuePattern = regexp.MustCompile(`^(?i:due):[[:space:]]+(\d{4}-\d{2}-\d{2})(?:[[:space:]]+\(.+\))?.?[[:space:]]*$`)
	legacyDuePattern  = regexp.MustCompile(`^due  ?(\d\d? [[:alpha:]]{3} \d{4})$`)

	dateRangePattern  = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}) .?> (\d{4}-\d{2}-\d{2})$`)
	singleDatePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})$`)
)

// FromBody finds the first "Due: YYYY-MM-DD" (or legacy "due DD Mon YYYY") line in text.
// The first line matching either pattern decides the result.
func FromBody(text string) (time.Time, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if matches := currentDuePattern.FindStringSubmatch(line); matches != nil {
			return parse(DateLayout, matches[1])
		}
		if matches := legacyDuePattern.FindStringSubmatch(line); matches != nil {
			return parse(legacyLayout, matches[1])
		}
	}

	return time.Time{}, false
}

// SpecDue is the spec name and due date parsed from a spec review request title
type SpecDue struct {
	Spec string
	Due  time.Time
}

// FromSpecTitle parses titles of the form "<spec> YYYY-MM-DD -> YYYY-MM-DD" (due is the
// second date) or "<spec> YYYY-MM-DD" (the filing date; due DefaultReviewDays later)
func FromSpecTitle(title string) (SpecDue, bool) {
	if loc := dateRangePattern.FindStringSubmatchIndex(title); loc != nil {
		dueDate, ok := parse(DateLayout, title[loc[4]:loc[5]])
		if !ok {
			return SpecDue{}, false
		}
		return SpecDue{
			Spec: strings.TrimRight(title[:loc[0]], " \t"),
			Due:  dueDate,
		}, true
	}

	if loc := singleDatePattern.FindStringSubmatchIndex(title); loc != nil {
		filed, ok := parse(DateLayout, title[loc[2]:loc[3]])
		if !ok {
			return SpecDue{}, false
		}
		return SpecDue{
			Spec: strings.TrimRight(title[:loc[0]], " \t"),
			Due:  filed.AddDate(0, 0, DefaultReviewDays),
		}, true
	}

	return SpecDue{}, false
}

// Format renders an optional date, using placeholder when it is absent
func Format(date *time.Time, placeholder string) string {
	if date == nil {
		return placeholder
	}
	return date.Format(DateLayout)
}

// CompareDates orders optional dates ascending. Absent dates sort before every present date
// so that requests missing a due date are seen first.
func CompareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}

func parse(layout, value string) (time.Time, bool) {
	date, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
