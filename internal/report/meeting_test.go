package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeeting(t *testing.T) {
	rendered := Meeting([]MeetingItem{
		{Title: "First", Lines: []string{"https://github.com/w3c/apa/issues/1", "Due: 2024-01-01"}},
		{Title: "Second", Lines: []string{"source: whatwg/html#8352", "tracking: https://github.com/w3c/a11y-review/issues/7"}},
	})

	expected := "gb, off\n\n" +
		"subtopic: First\nhttps://github.com/w3c/apa/issues/1\nDue: 2024-01-01\n\n" +
		"subtopic: Second\nsource: whatwg/html#8352\ntracking: https://github.com/w3c/a11y-review/issues/7\n\n" +
		"gb, on"
	assert.Equal(t, expected, rendered)
}

func TestAgenda(t *testing.T) {
	rendered := Agenda([]AgendaItem{
		{Title: "Review CSS", URL: "https://github.com/w3c/a11y-request/issues/3", Suffix: "(due 2024-02-01)"},
		{Title: "Charter", URL: "https://github.com/w3c/strategy/issues/9"},
	})

	expected := "1. Review CSS https://github.com/w3c/a11y-request/issues/3 (due 2024-02-01)\n" +
		"2. Charter https://github.com/w3c/strategy/issues/9"
	assert.Equal(t, expected, rendered)
}

func TestParseFormats(t *testing.T) {
	formats, err := ParseFormats([]string{"table", "meeting", "agenda", "web", "gh"})
	require.NoError(t, err)
	assert.Equal(t, Formats, formats)

	_, err = ParseFormats([]string{"table", "csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"csv"`)
	assert.Contains(t, err.Error(), "table, meeting, agenda, web, gh")
}

func TestFormat_Delegates(t *testing.T) {
	tests := []struct {
		format    Format
		delegates bool
	}{
		{FormatTable, false},
		{FormatMeeting, false},
		{FormatAgenda, false},
		{FormatWeb, true},
		{FormatGh, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.delegates, tt.format.Delegates())
		})
	}
}
