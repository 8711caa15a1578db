package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/term"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."
const tableColumnGap = 2

// tableViewportWidth returns the terminal width, or 0 when stdout is not a terminal.
var tableViewportWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as an aligned table. On a terminal
// the last column is stretched or truncated to fit the viewport.
func FormatTable(headers []string, rows [][]string) string {
	normalizedHeaders := make([]string, len(headers))
	for i, header := range headers {
		normalizedHeaders[i] = normalizeTableCell(header)
	}

	normalizedRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		normalizedRow := make([]string, len(row))
		for i, cell := range row {
			normalizedRow[i] = normalizeTableCell(cell)
		}
		normalizedRows = append(normalizedRows, normalizedRow)
	}

	widths := make([]int, len(normalizedHeaders))
	for i, header := range normalizedHeaders {
		widths[i] = displayWidth(header)
	}

	for _, row := range normalizedRows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if displayLen := displayWidth(cell); displayLen > widths[i] {
				widths[i] = displayLen
			}
		}
	}

	fitToViewport(widths, tableViewportWidth())

	var builder strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			if i < len(widths) && displayWidth(cell) > widths[i] {
				cell = truncateWithEllipsis(cell, widths[i])
			}
			builder.WriteString(cell)
			padding := 0
			if i < len(widths) {
				padding = widths[i] - displayWidth(cell)
			}
			if i == len(row)-1 {
				builder.WriteString(strings.Repeat(" ", padding))
				builder.WriteByte('\n')
				continue
			}
			builder.WriteString(strings.Repeat(" ", padding+tableColumnGap))
		}
	}

	writeRow(normalizedHeaders)
	for _, row := range normalizedRows {
		writeRow(row)
	}

	return builder.String()
}

func fitToViewport(widths []int, viewport int) {
	if viewport <= 0 || len(widths) == 0 {
		return
	}
	total := tableColumnGap * (len(widths) - 1)
	for _, width := range widths {
		total += width
	}
	last := len(widths) - 1
	widths[last] += viewport - total
	if minWidth := len(tableCellEllipsis); widths[last] < minWidth {
		widths[last] = minWidth
	}
}

// TruncateTableCell limits cell width while preserving visible characters.
func TruncateTableCell(value string) string {
	value = normalizeTableCell(value)
	if displayWidth(value) <= tableCellMaxWidth {
		return value
	}
	return truncateWithEllipsis(value, tableCellMaxWidth)
}

// Truncate limits value to width visible columns, ending in an ellipsis
// when it had to cut.
func Truncate(value string, width int) string {
	if displayWidth(value) <= width {
		return value
	}
	return truncateWithEllipsis(value, width)
}

func truncateWithEllipsis(value string, width int) string {
	if width <= len(tableCellEllipsis) {
		return tableCellEllipsis[:max(width, 0)]
	}
	return truncate.StringWithTail(value, uint(width), tableCellEllipsis)
}

func displayWidth(value string) int {
	return lipgloss.Width(value)
}

func normalizeTableCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}
