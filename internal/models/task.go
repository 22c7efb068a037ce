package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/daybreak-app/daybreak/internal/calendar"
)

// Task is a task-list item, optionally recurring.
type Task struct {
	TaskID      uuid.UUID      `json:"task_id"`
	UserID      int64          `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Rule        RecurrenceRule `json:"rule"`
	DueDate     *calendar.Date `json:"due_date"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

func (t *Task) IsRecurring() bool {
	return t.Rule != "" && t.Rule != RecurrenceNone
}

// HabitKey is the logical identity a completion history is keyed by.
// Renaming a task or changing its rule starts a fresh history.
func (t *Task) HabitKey() string {
	return t.Title + "|" + string(t.Rule)
}

// StreakKind maps the task's recurrence rule onto a streak cadence.
func (t *Task) StreakKind() ScheduleKind {
	switch t.Rule {
	case RecurrenceWeekdays:
		return KindWeekdays
	case RecurrenceWeekly:
		return KindWeekly
	default:
		return KindDaily
	}
}
