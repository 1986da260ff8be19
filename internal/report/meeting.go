package report

import (
	"fmt"
	"strings"
)

// MeetingItem is one subtopic to be scribed during a meeting
type MeetingItem struct {
	Title string
	// Lines follow the subtopic, e.g. a URL, "source: w3c/apa#1" or "Due: 2024-01-01"
	Lines []string
}

// Meeting renders IRC commands for a meeting. The minute-taking bot is paused ("gb, off") while
// the subtopics are pasted, and resumed afterwards.
func Meeting(items []MeetingItem) string {
	var b strings.Builder

	b.WriteString("gb, off\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "subtopic: %s\n", item.Title)
		for _, line := range item.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("gb, on")

	return b.String()
}

// AgendaItem is one line of an agenda
type AgendaItem struct {
	Title  string
	URL    string
	Suffix string
}

// Agenda renders a numbered list suitable for a meeting announcement
func Agenda(items []AgendaItem) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		line := fmt.Sprintf("%d. %s %s", i+1, item.Title, item.URL)
		if item.Suffix != "" {
			line += " " + item.Suffix
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
