package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid holds the formatted cell values of one sheet as excelize reports
// them: 0-based rows, each row truncated after its last non-empty cell.
type Grid [][]string

// ValueRows extracts the value grid of a sheet.
func ValueRows(f *excelize.File, sheetName string) (Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return Grid(rows), nil
}

// Cell returns the trimmed value at (row, col), or the empty string when
// the grid is shorter than the requested position.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// Columns returns the width of the widest row.
func (g Grid) Columns() int {
	columns := 0
	for _, row := range g {
		if len(row) > columns {
			columns = len(row)
		}
	}
	return columns
}

// CountPositions counts the scheduled positions of one column: the cells
// of the position block that are non-empty after trimming.
func (g Grid) CountPositions(col int) int {
	count := 0
	for row := PositionRowStart; row < len(g); row++ {
		if g.Cell(row, col) != "" {
			count++
		}
	}
	return count
}
