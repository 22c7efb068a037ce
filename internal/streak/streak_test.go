package streak

import (
	"testing"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/models"
)

// completedOn builds a descending completion history from dates given
// newest-first.
func completedOn(dates ...calendar.Date) []models.CompletionRecord {
	records := make([]models.CompletionRecord, len(dates))
	for i, d := range dates {
		records[i] = models.CompletionRecord{Date: d, Completed: true}
	}
	return records
}

// dailyRun returns the n consecutive days immediately before today,
// newest first.
func dailyRun(today calendar.Date, n int) []calendar.Date {
	dates := make([]calendar.Date, n)
	for i := 0; i < n; i++ {
		dates[i] = today.AddDays(-(i + 1))
	}
	return dates
}

func TestDailyStreakFiveConsecutiveDays(t *testing.T) {
	today := calendar.New(2025, 3, 14)
	history := completedOn(dailyRun(today, 5)...)

	s := Calculate(history, models.KindDaily, today)
	if s.Current != 5 {
		t.Errorf("Current = %d, want 5", s.Current)
	}
	if s.AtMilestone {
		t.Error("5 is not a milestone")
	}
	if s.NextMilestone != 7 {
		t.Errorf("NextMilestone = %d, want 7", s.NextMilestone)
	}
	if s.LastCompleted == nil || !s.LastCompleted.Equal(today.AddDays(-1)) {
		t.Errorf("LastCompleted = %v, want yesterday", s.LastCompleted)
	}
}

func TestDailyStreakBrokenByGap(t *testing.T) {
	today := calendar.New(2025, 3, 14)
	// Completed yesterday and the day before, then a gap, then more.
	history := completedOn(
		today.AddDays(-1),
		today.AddDays(-2),
		today.AddDays(-4),
		today.AddDays(-5),
		today.AddDays(-6),
	)

	s := Calculate(history, models.KindDaily, today)
	if s.Current != 2 {
		t.Errorf("Current = %d, want 2", s.Current)
	}
	if s.Longest != 3 {
		t.Errorf("Longest = %d, want 3 (the older run)", s.Longest)
	}
}

func TestDailyStreakIncompleteRecordBreaks(t *testing.T) {
	today := calendar.New(2025, 3, 14)
	history := []models.CompletionRecord{
		{Date: today.AddDays(-1), Completed: true},
		{Date: today.AddDays(-2), Completed: false},
		{Date: today.AddDays(-3), Completed: true},
	}

	s := Calculate(history, models.KindDaily, today)
	if s.Current != 1 {
		t.Errorf("Current = %d, want 1", s.Current)
	}
}

func TestDailyStreakExcludesTodayRecord(t *testing.T) {
	today := calendar.New(2025, 3, 14)
	history := completedOn(append([]calendar.Date{today}, dailyRun(today, 3)...)...)

	s := Calculate(history, models.KindDaily, today)
	if s.Current != 3 {
		t.Errorf("Current = %d, want 3 (today's record excluded)", s.Current)
	}
	// Today's completion still counts as the last completed date.
	if s.LastCompleted == nil || !s.LastCompleted.Equal(today) {
		t.Errorf("LastCompleted = %v, want today", s.LastCompleted)
	}
}

func TestWeekdaysStreakSpansWeekend(t *testing.T) {
	// Today is Monday 2025-03-17; the 10 business days before it are
	// Mar 3..7 and Mar 10..14, spanning two weekends.
	today := calendar.New(2025, 3, 17)
	var dates []calendar.Date
	d := today
	for len(dates) < 10 {
		d = d.AddDays(-1)
		if !d.IsWeekend() {
			dates = append(dates, d)
		}
	}
	history := completedOn(dates...)

	s := Calculate(history, models.KindWeekdays, today)
	if s.Current != 10 {
		t.Errorf("Current = %d, want 10 (weekend is not a break)", s.Current)
	}
	if s.Longest != 10 {
		t.Errorf("Longest = %d, want 10", s.Longest)
	}
}

func TestWeekdaysStreakMissedFridayBreaks(t *testing.T) {
	// Monday 2025-03-17; completed Thu 03-13 and Wed 03-12 but not Fri 03-14.
	today := calendar.New(2025, 3, 17)
	history := completedOn(calendar.New(2025, 3, 13), calendar.New(2025, 3, 12))

	s := Calculate(history, models.KindWeekdays, today)
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0 (Friday was expected)", s.Current)
	}
	if s.Longest != 2 {
		t.Errorf("Longest = %d, want 2", s.Longest)
	}
}

func TestWeeklyStreakWithDrift(t *testing.T) {
	today := calendar.New(2025, 3, 14)
	// Completions roughly weekly: 6, 14 and 20 days ago. Each lands
	// within the ±7 day tolerance of its expected slot.
	history := completedOn(
		today.AddDays(-6),
		today.AddDays(-14),
		today.AddDays(-20),
	)

	s := Calculate(history, models.KindWeekly, today)
	if s.Current != 3 {
		t.Errorf("Current = %d, want 3", s.Current)
	}
}

func TestWeeklyStreakBrokenByLongGap(t *testing.T) {
	today := calendar.New(2025, 3, 14)
	history := completedOn(
		today.AddDays(-5),
		today.AddDays(-25), // 20-day gap from the previous completion
	)

	s := Calculate(history, models.KindWeekly, today)
	if s.Current != 1 {
		t.Errorf("Current = %d, want 1", s.Current)
	}
}

func TestMilestones(t *testing.T) {
	today := calendar.New(2025, 6, 1)

	tests := []struct {
		days int
		at   bool
		next int
	}{
		{0, false, 7},
		{6, false, 7},
		{7, true, 30},
		{30, true, 90},
		{90, true, 365},
		{365, true, 730},
		{100, false, 365},
		{400, false, 765},
	}
	for _, tt := range tests {
		history := completedOn(dailyRun(today, tt.days)...)
		s := Calculate(history, models.KindDaily, today)
		if s.Current != tt.days {
			t.Errorf("days=%d: Current = %d", tt.days, s.Current)
		}
		if s.AtMilestone != tt.at {
			t.Errorf("days=%d: AtMilestone = %v, want %v", tt.days, s.AtMilestone, tt.at)
		}
		if s.NextMilestone != tt.next {
			t.Errorf("days=%d: NextMilestone = %d, want %d", tt.days, s.NextMilestone, tt.next)
		}
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	today := calendar.New(2025, 3, 14)
	history := completedOn(dailyRun(today, 12)...)

	first := Calculate(history, models.KindDaily, today)
	second := Calculate(history, models.KindDaily, today)
	if first.Current != second.Current || first.Longest != second.Longest ||
		first.AtMilestone != second.AtMilestone || first.NextMilestone != second.NextMilestone {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
	if first.LastCompleted == nil || second.LastCompleted == nil {
		t.Fatal("LastCompleted should be set for a completed history")
	}
	if !first.LastCompleted.Equal(*second.LastCompleted) {
		t.Errorf("LastCompleted differs: %v vs %v", first.LastCompleted, second.LastCompleted)
	}
}

func TestEmptyHistory(t *testing.T) {
	s := Calculate(nil, models.KindDaily, calendar.New(2025, 3, 14))
	if s.Current != 0 || s.Longest != 0 {
		t.Errorf("empty history: %+v", s)
	}
	if s.LastCompleted != nil {
		t.Errorf("LastCompleted = %v, want nil", s.LastCompleted)
	}
	if s.NextMilestone != 7 {
		t.Errorf("NextMilestone = %d, want 7", s.NextMilestone)
	}
}
