// Package models defines the data structures shared by the schedule
// parser and its consumers.
package models

// Status is the inventory state a position cell signals through its
// background fill.
type Status string

const (
	// StatusDone marks a position already inventoried (green fills).
	StatusDone Status = "INVENTARIADO"
	// StatusInProgress marks a position currently being counted (yellow fills).
	StatusInProgress Status = "EM ANDAMENTO"
	// StatusProblem marks a position flagged with an issue (red fills).
	StatusProblem Status = "PROBLEMA"
	// StatusPending marks everything else: no fill, an unrecognized color,
	// or a fill descriptor that could not be read.
	StatusPending Status = "PENDENTE"
)

// String returns the status label.
func (s Status) String() string {
	return string(s)
}
