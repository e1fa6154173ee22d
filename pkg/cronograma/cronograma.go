package cronograma

import (
	"bytes"
	"math"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/inventario26/cronograma-go/pkg/cronograma/models"
	"github.com/inventario26/cronograma-go/pkg/cronograma/parser"
)

// Load decodes a schedule workbook and aggregates it into a per-day
// report. Cell values come from excelize, fill descriptors from a second
// pass over the stylesheet; see parser.SheetFills for why both passes are
// needed. Load fails with a *LoadError when the bytes are not a workbook,
// the sheet cannot be found, or the fixed layout rows are missing.
func Load(data []byte, opts Options) (*models.Report, error) {
	sheetName := opts.Sheet()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewLoadError(sheetName, "workbook", err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		return nil, NewLoadError(sheetName, "workbook", ErrSheetNotFound)
	}

	grid, err := parser.ValueRows(f, sheetName)
	if err != nil {
		return nil, NewLoadError(sheetName, "values", err)
	}
	if len(grid) <= parser.PositionRowStart {
		return nil, NewLoadError(sheetName, "layout", ErrMissingLayoutRows)
	}

	fills, err := parser.SheetFills(data, sheetName)
	if err != nil {
		return nil, NewLoadError(sheetName, "fills", err)
	}

	return &models.Report{
		SheetName: sheetName,
		Days:      aggregate(grid, fills),
	}, nil
}

// aggregate walks the grid column by column, keeps the valid schedule
// columns and tallies the statuses of their position cells.
func aggregate(grid parser.Grid, fills models.FillMap) []models.DayRecord {
	// Last physical row of the position block. The grid is 0-based while
	// fills are addressed 1-based.
	lastRow := len(grid)

	var days []models.DayRecord
	for col := 0; col < grid.Columns(); col++ {
		weekday := grid.Cell(parser.WeekdayRow, col)
		if parser.IsWeekend(weekday) {
			continue
		}
		dateLabel := grid.Cell(parser.DateRow, col)
		if dateLabel == "" || dateLabel == parser.DateHeaderLabel {
			continue
		}
		total := grid.CountPositions(col)
		if total == 0 {
			continue
		}

		done, inProgress, problem := parser.CountStatuses(fills, col+1, parser.PositionRowStart+1, lastRow)
		pending := total - done - inProgress - problem
		if pending < 0 {
			// Merged or decorative blocks can leave more colored cells
			// than filled ones. Never report a negative backlog.
			pending = 0
		}

		day := models.DayRecord{
			Weekday:    weekday,
			Total:      total,
			Done:       done,
			InProgress: inProgress,
			Problem:    problem,
			Pending:    pending,
		}
		if date, ok := parser.ParseDate(dateLabel); ok {
			day.Date = &date
		}
		days = append(days, day)
	}

	// Ascending by date, stable, unparsed dates last.
	sort.SliceStable(days, func(i, j int) bool {
		di, dj := days[i].Date, days[j].Date
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
	return days
}

// Summarize derives the planning metrics of a report. Today in opts only
// matters when IgnorePastDays is set; its zero value resolves to the
// current date.
func Summarize(r *models.Report, opts SummaryOptions) models.Summary {
	var s models.Summary
	for _, d := range r.Days {
		s.TotalPositions += d.Total
		s.TotalDone += d.Done
		s.TotalInProgress += d.InProgress
		s.TotalProblem += d.Problem
		s.TotalPending += d.Pending
	}
	s.Remaining = s.TotalInProgress + s.TotalProblem + s.TotalPending
	if s.TotalPositions > 0 {
		pct := float64(s.TotalDone) / float64(s.TotalPositions) * 100
		s.PercentDone = math.Round(pct*10) / 10
	}

	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	for _, d := range r.Days {
		if !d.Open() {
			continue
		}
		// Days without a parsed date cannot be compared against today and
		// drop out of the planning window when the filter is on.
		if opts.IgnorePastDays && (d.Date == nil || d.Date.Before(today)) {
			continue
		}
		s.OpenDays++
	}
	if s.OpenDays > 0 {
		// Ceiling division: the daily target must cover all of Remaining.
		s.IdealPerDay = (s.Remaining + s.OpenDays - 1) / s.OpenDays
	}
	return s
}
