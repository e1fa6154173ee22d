package cronograma

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the
// workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrMissingLayoutRows indicates the sheet is too short to hold the fixed
// schedule layout (weekday, date and position rows).
var ErrMissingLayoutRows = errors.New("sheet is missing the fixed layout rows")

// LoadError represents a failure to turn workbook bytes into a report.
type LoadError struct {
	SheetName string
	Stage     string // "workbook", "values", "fills" or "layout"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, stage string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
