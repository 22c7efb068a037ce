package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/daybreak-app/daybreak/internal/calendar"
)

// Schedule is a recurring meeting-style obligation. Its due-date state
// is only ever advanced by the recurrence calculator, after a
// completion or skip event.
type Schedule struct {
	ScheduleID         uuid.UUID         `json:"schedule_id"`
	UserID             int64             `json:"user_id"`
	Title              string            `json:"title"`
	Frequency          ScheduleFrequency `json:"frequency"`
	PreferredDay       *time.Weekday     `json:"preferred_day"`
	CustomIntervalDays *int              `json:"custom_interval_days"`
	LastCompletedDate  *calendar.Date    `json:"last_completed_date"`
	NextDueDate        calendar.Date     `json:"next_due_date"`
	RRule              string            `json:"rrule"`
	CreatedAt          time.Time         `json:"created_at"`
}

// IsDue reports whether the schedule is due on or before the given date.
func (s *Schedule) IsDue(today calendar.Date) bool {
	return !s.NextDueDate.After(today)
}
