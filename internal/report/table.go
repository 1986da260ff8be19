package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

const (
	columnGap = 2
	ellipsis  = "…"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).PaddingRight(columnGap)
	cellStyle   = lipgloss.NewStyle().PaddingRight(columnGap)
)

// Table renders rows as borderless, aligned columns. maxWidths maps a column index to the
// widest its cells may be; longer cells are clipped.
func Table(headers []string, rows [][]string, maxWidths map[int]int) string {
	clipped := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = clip(cell, maxWidths[i])
		}
		clipped = append(clipped, cells)
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(headers...).
		Rows(clipped...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	lines := strings.Split(t.Render(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// clip keeps a cell to one line no wider than width (0 means unlimited)
func clip(cell string, width int) string {
	if line, _, found := strings.Cut(cell, "\n"); found {
		cell = strings.TrimRight(line, "\r") + ellipsis
	}
	if width <= 0 || runewidth.StringWidth(cell) <= width {
		return cell
	}
	return runewidth.Truncate(cell, width, ellipsis)
}

// InvalidRow is a request whose status labels conflict
type InvalidRow struct {
	ID     int
	Title  string
	Status string
}

// InvalidStatuses lists requests with conflicting status labels, or returns "" if there are none
func InvalidStatuses(rows []InvalidRow) string {
	if len(rows) == 0 {
		return ""
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{fmt.Sprint(row.ID), row.Title, row.Status})
	}

	return "Requests with invalid statuses due to conflicting labels:\n\n" +
		Table([]string{"ID", "TITLE", "INVALID STATUS"}, cells, nil) + "\n"
}

// Domains lists the distinct values seen, e.g. "Groups: apa, css", or returns "" if there are none
func Domains(pretty string, values []string) string {
	distinct := slices.Clone(values)
	distinct = slices.DeleteFunc(distinct, func(v string) bool { return v == "" })
	if len(distinct) == 0 {
		return ""
	}

	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	return fmt.Sprintf("%s: %s\n", pretty, strings.Join(distinct, ", "))
}
