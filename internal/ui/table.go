package ui

import (
	"os"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."
const tableColumnGap = 2

// tableViewportWidth returns the terminal width, or 0 when stdout is not a
// terminal.
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

// FormatTable renders headers and rows as an aligned table. The last column
// stretches to fill the terminal when stdout is one.
func FormatTable(headers []string, rows [][]string) string {
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, normalizeRow(headers))
	for _, row := range rows {
		cells = append(cells, normalizeRow(row))
	}

	widths := columnWidths(len(headers), cells)
	fillViewport(widths)

	var out strings.Builder
	for _, row := range cells {
		for i, cell := range row {
			if i > 0 {
				out.WriteString(strings.Repeat(" ", tableColumnGap))
			}
			out.WriteString(cell)
			if i < len(widths) {
				if pad := widths[i] - displayWidth(cell); pad > 0 {
					out.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func normalizeRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = normalizeTableCell(cell)
	}
	return out
}

func columnWidths(columns int, rows [][]string) []int {
	widths := make([]int, columns)
	for _, row := range rows {
		for i, cell := range row {
			if i >= columns {
				break
			}
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}
	return widths
}

func fillViewport(widths []int) {
	if len(widths) == 0 {
		return
	}
	total := tableColumnGap * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	if viewport := tableViewportWidth(); viewport > total {
		widths[len(widths)-1] += viewport - total
	}
}

// TruncateTableCell limits cell width while preserving escape sequences.
func TruncateTableCell(value string) string {
	value = normalizeTableCell(value)
	if displayWidth(value) <= tableCellMaxWidth {
		return value
	}
	return xansi.Truncate(value, tableCellMaxWidth, tableCellEllipsis)
}

func displayWidth(value string) int {
	return xansi.StringWidth(value)
}

var tableCellReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func normalizeTableCell(value string) string {
	return tableCellReplacer.Replace(value)
}

func stripANSICodes(input string) string {
	return xansi.Strip(input)
}
