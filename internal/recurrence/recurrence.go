// Package recurrence computes next due dates for recurring tasks and
// schedules. All functions are pure: the reference date is always an
// explicit argument, never the wall clock.
package recurrence

import (
	"time"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/models"
)

// DefaultCustomIntervalDays is used when a custom schedule has a
// missing or non-positive interval.
const DefaultCustomIntervalDays = 7

// NextTaskDate returns the date a task becomes due again after being
// completed on last. Unknown rules fall back to daily; the result is
// always strictly after last.
func NextTaskDate(last calendar.Date, rule models.RecurrenceRule) calendar.Date {
	switch rule {
	case models.RecurrenceWeekly:
		return last.AddDays(7)
	case models.RecurrenceWeekdays:
		next := last.AddDays(1)
		for next.IsWeekend() {
			next = next.AddDays(1)
		}
		return next
	default:
		return last.AddDays(1)
	}
}

// NextScheduleDueDate returns the next due date for a schedule. The
// base is lastCompleted when set, otherwise today. Weekly and biweekly
// frequencies honor an optional preferred weekday by rolling the
// post-interval date forward (never backward) to that weekday; a date
// that already falls on the preferred weekday is kept as-is. Monthly
// and quarterly add calendar months with month-end clamping. Custom
// adds customDays, clamped to a 7-day default when missing or
// non-positive. The result is always strictly after the base date.
func NextScheduleDueDate(
	frequency models.ScheduleFrequency,
	preferredDay *time.Weekday,
	lastCompleted *calendar.Date,
	customDays *int,
	today calendar.Date,
) calendar.Date {
	base := today
	if lastCompleted != nil && !lastCompleted.IsZero() {
		base = *lastCompleted
	}

	var next calendar.Date
	switch frequency {
	case models.FrequencyBiweekly:
		next = rollToWeekday(base.AddDays(14), preferredDay)
	case models.FrequencyMonthly:
		next = base.AddMonths(1)
	case models.FrequencyQuarterly:
		next = base.AddMonths(3)
	case models.FrequencyCustom:
		days := DefaultCustomIntervalDays
		if customDays != nil && *customDays > 0 {
			days = *customDays
		}
		next = base.AddDays(days)
	default: // weekly, and any unrecognized frequency
		next = rollToWeekday(base.AddDays(7), preferredDay)
	}

	// Strict forward progress regardless of frequency or inputs.
	if !next.After(base) {
		next = base.AddDays(1)
	}
	return next
}

// rollToWeekday advances d to the next occurrence of the preferred
// weekday. A nil preference, or a d already on that weekday, leaves d
// unchanged.
func rollToWeekday(d calendar.Date, preferred *time.Weekday) calendar.Date {
	if preferred == nil {
		return d
	}
	delta := (int(*preferred) - int(d.Weekday()) + 7) % 7
	return d.AddDays(delta)
}
