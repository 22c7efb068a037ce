// Package streak computes consecutive-completion streaks over a
// habit's completion history, aware of the habit's cadence.
package streak

import (
	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/models"
)

// Milestones are the fixed streak thresholds surfaced to the user.
var Milestones = []int{7, 30, 90, 365}

// weeklySlackDays is how far a completion may drift from its expected
// weekly slot and still count toward the streak.
const weeklySlackDays = 7

// Summary is the computed streak state for one habit.
type Summary struct {
	Current       int            `json:"current_streak"`
	Longest       int            `json:"longest_streak"`
	LastCompleted *calendar.Date `json:"last_completed_date"`
	AtMilestone   bool           `json:"is_at_milestone"`
	NextMilestone int            `json:"next_milestone"`
}

// Calculate walks a habit's history and returns its streak summary.
// History must be ordered by date descending. Today's own record is
// excluded from the current-streak walk: the current streak counts
// consecutive prior completions, so callers can tell whether
// completing today extends or starts a streak.
func Calculate(history []models.CompletionRecord, kind models.ScheduleKind, today calendar.Date) Summary {
	completed := completedDates(history, today)

	var s Summary
	s.Current = currentStreak(completed, kind, today)
	s.Longest = longestStreak(completed, kind)
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	for _, rec := range history {
		if rec.Completed {
			d := rec.Date
			s.LastCompleted = &d
			break
		}
	}
	s.AtMilestone, s.NextMilestone = milestone(s.Current)
	return s
}

// completedDates filters history down to completed records strictly
// before today, ordered descending, one entry per date.
func completedDates(history []models.CompletionRecord, today calendar.Date) []calendar.Date {
	var out []calendar.Date
	for _, rec := range history {
		if !rec.Completed || !rec.Date.Before(today) {
			continue
		}
		if len(out) > 0 && out[len(out)-1].Equal(rec.Date) {
			continue
		}
		out = append(out, rec.Date)
	}
	return out
}

func currentStreak(completed []calendar.Date, kind models.ScheduleKind, today calendar.Date) int {
	if kind == models.KindWeekly {
		return currentWeeklyStreak(completed, today)
	}

	done := make(map[calendar.Date]bool, len(completed))
	for _, d := range completed {
		done[d] = true
	}

	streak := 0
	expected := previousExpected(today, kind)
	for done[expected] {
		streak++
		expected = previousExpected(expected, kind)
	}
	return streak
}

// previousExpected returns the most recent date before d on which a
// completion is expected. For weekday cadences a weekend is not a
// break: the expected sequence simply skips Saturday and Sunday.
func previousExpected(d calendar.Date, kind models.ScheduleKind) calendar.Date {
	prev := d.AddDays(-1)
	if kind == models.KindWeekdays {
		for prev.IsWeekend() {
			prev = prev.AddDays(-1)
		}
	}
	return prev
}

// currentWeeklyStreak walks back one expected weekly slot at a time,
// anchoring each next slot on the completion that satisfied the
// previous one so small drift does not accumulate.
func currentWeeklyStreak(completed []calendar.Date, today calendar.Date) int {
	streak := 0
	anchor := today
	for _, d := range completed {
		expected := anchor.AddDays(-7)
		diff := expected.DaysSince(d)
		if diff < 0 {
			diff = -diff
		}
		if diff > weeklySlackDays {
			break
		}
		streak++
		anchor = d
	}
	return streak
}

// longestStreak chains completions in ascending order using the same
// gap rules as the current-streak walk.
func longestStreak(completed []calendar.Date, kind models.ScheduleKind) int {
	if len(completed) == 0 {
		return 0
	}

	longest, run := 1, 1
	// completed is descending; walk from oldest to newest.
	for i := len(completed) - 2; i >= 0; i-- {
		prev, next := completed[i+1], completed[i]
		if consecutive(prev, next, kind) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func consecutive(prev, next calendar.Date, kind models.ScheduleKind) bool {
	switch kind {
	case models.KindWeekly:
		gap := next.DaysSince(prev)
		return gap >= 1 && gap <= 7+weeklySlackDays
	case models.KindWeekdays:
		expected := prev.AddDays(1)
		for expected.IsWeekend() {
			expected = expected.AddDays(1)
		}
		return next.Equal(expected)
	default:
		return next.DaysSince(prev) == 1
	}
}

// milestone reports whether current sits exactly on a threshold and
// the next threshold to aim for.
func milestone(current int) (at bool, next int) {
	for _, m := range Milestones {
		if current == m {
			at = true
		}
		if current < m {
			return at, m
		}
	}
	return at, current + 365
}
