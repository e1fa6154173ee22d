// Package parser provides the low-level extraction of schedule sheets:
// the value grid, the cell fill descriptors and their classification.
package parser

import "strings"

// Fixed structural rows of a schedule sheet, 0-based as seen in the value
// grid. Physical (1-based) cell addressing adds one.
const (
	// QuantityRow holds the planned position count per column.
	QuantityRow = 1
	// WeekdayRow holds the weekday abbreviation (SEG, TER, ...).
	WeekdayRow = 2
	// WeekRow holds the week label of the column.
	WeekRow = 3
	// DateRow holds the calendar date of the column.
	DateRow = 4
	// GroupRow holds the group or sector label.
	GroupRow = 5
	// PositionRowStart is the first row of the position block. Everything
	// from here down is a position cell.
	PositionRowStart = 6
)

// DateHeaderLabel is the literal printed in the date row's label column.
// Columns still carrying it hold no calendar date.
const DateHeaderLabel = "Data"

// weekendLabels are the weekday abbreviations excluded from the report.
var weekendLabels = map[string]bool{
	"SÁB": true,
	"SAB": true,
	"DOM": true,
}

// IsWeekend reports whether a weekday label marks a weekend column. The
// match is case insensitive and tolerates surrounding whitespace.
func IsWeekend(label string) bool {
	return weekendLabels[strings.ToUpper(strings.TrimSpace(label))]
}
