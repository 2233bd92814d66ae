// Package table lays out plain-text rows in aligned columns for list views.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes how one column is laid out. MaxWidth of zero leaves cells
// at their natural width.
type Column struct {
	Align    Alignment
	MaxWidth int
}

const columnGap = "  "

// Format pads every row so that each column is as wide as its widest cell.
// Cells wider than the column's MaxWidth are cut and end in an ellipsis.
func Format(rows [][]string, columns []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	cells := make([][]string, len(rows))
	widths := make([]int, 0, len(columns))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for c, cell := range row {
			if c < len(columns) && columns[c].MaxWidth > 0 {
				cell = truncate.StringWithTail(cell, uint(columns[c].MaxWidth), "…")
			}
			cells[i][c] = cell
			for len(widths) <= c {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := widths[c] - ansi.StringWidth(cell)
			last := c == len(row)-1
			if c < len(columns) && columns[c].Align == AlignRight {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if !last {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
			}
		}
		out[i] = b.String()
	}
	return out
}
