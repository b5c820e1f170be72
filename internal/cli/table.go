// Package cli provides the command-line interface for Swatchbook.
package cli

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table formats rows into aligned columns. Widths are measured in terminal
// cells so names with wide characters line up. An optional swatch column of
// pre-rendered ANSI blocks can be placed before the text columns; its width
// is declared rather than measured because escape sequences have no width.
type Table struct {
	headers     []string
	rows        [][]string
	swatches    []string
	swatchWidth int
	padding     int
	maxWidths   map[int]int // Maximum width per column index (0 = no limit)
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		rows:      make([][]string, 0),
		padding:   2, // 2 spaces between columns
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth sets a maximum width for a specific column.
// Longer text is truncated with an ellipsis.
func (t *Table) SetColumnMaxWidth(colIndex int, maxWidth int) {
	t.maxWidths[colIndex] = maxWidth
}

// EnableSwatches reserves a leading column of the given cell width for
// swatch blocks added with AddSwatchRow.
func (t *Table) EnableSwatches(width int) {
	t.swatchWidth = width
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row []string) {
	t.AddSwatchRow("", row)
}

// AddSwatchRow adds a row with a pre-rendered swatch block.
func (t *Table) AddSwatchRow(swatch string, row []string) {
	if len(row) != len(t.headers) {
		// Pad or truncate to match header count.
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		row = newRow
	}
	t.rows = append(t.rows, row)
	t.swatches = append(t.swatches, swatch)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	cells := make([][]string, len(t.rows))
	for r, row := range t.rows {
		cells[r] = make([]string, len(row))
		for c, cell := range row {
			if maxWidth := t.maxWidths[c]; maxWidth > 0 {
				cell = runewidth.Truncate(cell, maxWidth, "…")
			}
			cells[r][c] = cell
		}
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	sep := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeLine := func(swatch string, parts []string) {
		if t.swatchWidth > 0 {
			if swatch == "" {
				swatch = strings.Repeat(" ", t.swatchWidth)
			}
			result.WriteString(swatch)
			result.WriteString(sep)
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		result.WriteString("\n")
	}

	// Header and separator.
	headerParts := make([]string, len(t.headers))
	sepParts := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerParts[i] = padRight(h, colWidths[i])
		sepParts[i] = strings.Repeat("-", colWidths[i])
	}
	writeLine("", headerParts)
	writeLine(strings.Repeat("-", t.swatchWidth), sepParts)

	for r, row := range cells {
		parts := make([]string, len(row))
		for i, cell := range row {
			parts[i] = padRight(cell, colWidths[i])
		}
		writeLine(t.swatches[r], parts)
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already at least that wide, it is returned unchanged.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
