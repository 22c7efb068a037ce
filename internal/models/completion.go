package models

import "github.com/daybreak-app/daybreak/internal/calendar"

// CompletionRecord is one append-only entry in a habit's history.
// The streak calculator reads ordered sequences of these and never
// mutates them.
type CompletionRecord struct {
	Date      calendar.Date `json:"date"`
	Completed bool          `json:"completed"`
}
