package models

import (
	"math"
	"time"
)

// DayRecord aggregates one valid schedule column: the positions planned
// for a single working day and their status counts.
type DayRecord struct {
	// Date is the calendar day of the column, nil when the date label
	// could not be parsed.
	Date *time.Time `json:"date"`
	// Weekday is the label from the weekday row, as written in the sheet.
	Weekday string `json:"weekday"`
	// Total counts the scheduled positions of the column.
	Total int `json:"total"`
	// Done counts positions classified as inventoried.
	Done int `json:"done"`
	// InProgress counts positions currently being counted.
	InProgress int `json:"in_progress"`
	// Problem counts positions flagged with an issue.
	Problem int `json:"problem"`
	// Pending counts positions not yet touched, clamped to zero when
	// colored cells outnumber the filled ones.
	Pending int `json:"pending"`
}

// Open reports whether the day still has positions to inventory.
func (d DayRecord) Open() bool {
	return d.Done < d.Total
}

// PercentDone returns the day's completion percentage rounded to one
// decimal place.
func (d DayRecord) PercentDone() float64 {
	if d.Total == 0 {
		return 0
	}
	return math.Round(float64(d.Done)/float64(d.Total)*1000) / 10
}

// Report is the per-day breakdown of one schedule sheet, ascending by
// date with unparsed dates last.
type Report struct {
	// SheetName is the tab the report was built from.
	SheetName string `json:"sheet_name"`
	// Days holds one record per valid schedule column.
	Days []DayRecord `json:"days"`
}

// Empty reports whether no valid schedule column was found.
func (r *Report) Empty() bool {
	return len(r.Days) == 0
}

// Summary carries the report-wide totals and the uniform planning metrics
// derived from them.
type Summary struct {
	// TotalPositions is the sum of every day's Total.
	TotalPositions int `json:"total_positions"`
	// TotalDone is the sum of every day's Done.
	TotalDone int `json:"total_done"`
	// TotalInProgress is the sum of every day's InProgress.
	TotalInProgress int `json:"total_in_progress"`
	// TotalProblem is the sum of every day's Problem.
	TotalProblem int `json:"total_problem"`
	// TotalPending is the sum of every day's Pending.
	TotalPending int `json:"total_pending"`
	// Remaining counts every position not yet done: in progress, problem
	// or pending.
	Remaining int `json:"remaining"`
	// PercentDone is TotalDone over TotalPositions, rounded to one
	// decimal place.
	PercentDone float64 `json:"percent_done"`
	// OpenDays counts the day records still open for planning purposes.
	OpenDays int `json:"open_days"`
	// IdealPerDay is the uniform daily workload that clears Remaining
	// across OpenDays, rounded up so the target never under-allocates.
	IdealPerDay int `json:"ideal_per_day"`
}
