// Package cronograma builds per-day inventory reports from schedule
// workbooks whose cell fill colors encode progress.
package cronograma

import "time"

// DefaultSheetName is the schedule tab loaded when the caller picks none.
const DefaultSheetName = "CRONOGRAMA"

// Options configures Load.
type Options struct {
	// SheetName selects the schedule tab. Empty selects DefaultSheetName.
	SheetName string
}

// DefaultOptions returns the options used for a plain schedule workbook.
func DefaultOptions() Options {
	return Options{SheetName: DefaultSheetName}
}

// Sheet returns the effective sheet name.
func (o Options) Sheet() string {
	if o.SheetName != "" {
		return o.SheetName
	}
	return DefaultSheetName
}

// SummaryOptions configures Summarize.
type SummaryOptions struct {
	// Today anchors the past-day cutoff. The zero value resolves to the
	// current date when Summarize runs.
	Today time.Time
	// IgnorePastDays drops days before Today from the open-day count, so
	// the daily target only spreads over days that can still be worked.
	IgnorePastDays bool
}
