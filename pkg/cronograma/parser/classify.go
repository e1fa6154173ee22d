package parser

import "github.com/inventario26/cronograma-go/pkg/cronograma/models"

// transparentRGB is the ARGB code written for cells with an alpha of zero.
// Such cells look unfilled and must classify as pending.
const transparentRGB = "00000000"

// doneRGB are the green fills marking an inventoried position.
var doneRGB = map[string]bool{
	"FF00FF00": true,
	"FF00B050": true,
	"FF92D050": true,
	"FF70AD47": true,
}

// inProgressRGB are the yellow and orange fills marking a count in progress.
var inProgressRGB = map[string]bool{
	"FFFFFF00": true,
	"FFFFC000": true,
	"FFFFFF99": true,
	"FFFFEB9C": true,
}

// problemRGB are the red fills marking a flagged position.
var problemRGB = map[string]bool{
	"FFFF0000": true,
	"FFC00000": true,
	"FFFF4444": true,
}

// Classify maps a cell fill descriptor to an inventory status. Literal RGB
// codes take priority over theme slots; anything unrecognized, non-solid or
// transparent is pending.
func Classify(fill models.CellFill) models.Status {
	if !fill.Solid {
		return models.StatusPending
	}
	if fill.RGB != "" {
		switch {
		case fill.RGB == transparentRGB:
			return models.StatusPending
		case doneRGB[fill.RGB]:
			return models.StatusDone
		case inProgressRGB[fill.RGB]:
			return models.StatusInProgress
		case problemRGB[fill.RGB]:
			return models.StatusProblem
		}
		return models.StatusPending
	}
	if fill.Theme != nil {
		switch {
		// Slots 9 and 6 hold the green accents. A positive tint lightens
		// them past the point where the panel treats the cell as done.
		case *fill.Theme == 9 && fill.Tint <= 0:
			return models.StatusDone
		case *fill.Theme == 6 && fill.Tint <= 0:
			return models.StatusDone
		case *fill.Theme == 7:
			return models.StatusInProgress
		case *fill.Theme == 2:
			return models.StatusProblem
		}
	}
	return models.StatusPending
}

// CountStatuses classifies the fills of one column between firstRow and
// lastRow (1-based, inclusive) and tallies the non-pending statuses. Cells
// absent from the map count as pending.
func CountStatuses(fills models.FillMap, col, firstRow, lastRow int) (done, inProgress, problem int) {
	for row := firstRow; row <= lastRow; row++ {
		switch Classify(fills[models.CellRef{Row: row, Col: col}]) {
		case models.StatusDone:
			done++
		case models.StatusInProgress:
			inProgress++
		case models.StatusProblem:
			problem++
		}
	}
	return done, inProgress, problem
}
