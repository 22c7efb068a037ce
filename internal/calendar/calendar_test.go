package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestLocationFallsBackOnInvalidTimezone(t *testing.T) {
	for _, tz := range []string{"", "Not/AZone", "garbage"} {
		if loc := Location(tz); loc != time.UTC {
			t.Errorf("Location(%q) = %v, want UTC", tz, loc)
		}
	}
	if loc := Location("America/New_York"); loc.String() != "America/New_York" {
		t.Errorf("Location(America/New_York) = %v", loc)
	}
}

func TestDateInResolvesPerTimezone(t *testing.T) {
	// 2025-03-15 02:30 UTC is still 2025-03-14 in Los Angeles.
	instant := time.Date(2025, 3, 15, 2, 30, 0, 0, time.UTC)

	if got := DateIn(instant, "UTC"); got != New(2025, 3, 15) {
		t.Errorf("DateIn UTC = %v", got)
	}
	if got := DateIn(instant, "America/Los_Angeles"); got != New(2025, 3, 14) {
		t.Errorf("DateIn LA = %v", got)
	}
	if got := HourIn(instant, "America/Los_Angeles"); got != 19 {
		t.Errorf("HourIn LA = %d, want 19", got)
	}
}

func TestAddDaysAcrossDSTBoundary(t *testing.T) {
	// US spring-forward was 2025-03-09; whole-day arithmetic must not
	// drift by an hour into the previous/next day.
	d := New(2025, 3, 8)
	if got := d.AddDays(1); got != New(2025, 3, 9) {
		t.Errorf("Mar 8 + 1 = %v", got)
	}
	if got := d.AddDays(3); got != New(2025, 3, 11) {
		t.Errorf("Mar 8 + 3 = %v", got)
	}
	if got := New(2025, 3, 11).AddDays(-3); got != d {
		t.Errorf("Mar 11 - 3 = %v", got)
	}
}

func TestAddDaysAcrossMonthAndYear(t *testing.T) {
	if got := New(2024, 12, 31).AddDays(1); got != New(2025, 1, 1) {
		t.Errorf("Dec 31 + 1 = %v", got)
	}
	if got := New(2024, 2, 28).AddDays(1); got != New(2024, 2, 29) {
		t.Errorf("leap Feb 28 + 1 = %v", got)
	}
}

func TestAddMonthsClampsMonthEnd(t *testing.T) {
	tests := []struct {
		start  Date
		months int
		want   Date
	}{
		{New(2025, 1, 31), 1, New(2025, 2, 28)},
		{New(2024, 1, 31), 1, New(2024, 2, 29)}, // leap year
		{New(2025, 1, 31), 3, New(2025, 4, 30)},
		{New(2025, 11, 30), 3, New(2026, 2, 28)}, // year rollover
		{New(2025, 1, 15), 1, New(2025, 2, 15)},
	}
	for _, tt := range tests {
		if got := tt.start.AddMonths(tt.months); got != tt.want {
			t.Errorf("%v + %d months = %v, want %v", tt.start, tt.months, got, tt.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	// 2025-03-09 was a Sunday.
	if got := New(2025, 3, 9).Weekday(); got != time.Sunday {
		t.Errorf("Weekday = %v, want Sunday", got)
	}
	if !New(2025, 3, 8).IsWeekend() {
		t.Error("Saturday should be a weekend")
	}
	if New(2025, 3, 10).IsWeekend() {
		t.Error("Monday should not be a weekend")
	}
}

func TestOrdinalAndDaysSince(t *testing.T) {
	a := New(2025, 3, 1)
	b := New(2025, 3, 11)
	if got := b.DaysSince(a); got != 10 {
		t.Errorf("DaysSince = %d, want 10", got)
	}
	if got := a.DaysSince(b); got != -10 {
		t.Errorf("reverse DaysSince = %d, want -10", got)
	}
	if New(1970, 1, 1).Ordinal() != 0 {
		t.Errorf("epoch ordinal = %d, want 0", New(1970, 1, 1).Ordinal())
	}
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2025-02-07")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.String() != "2025-02-07" {
		t.Errorf("String = %q", d.String())
	}
	if _, err := Parse("07/02/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	type record struct {
		Day  Date  `json:"day"`
		Last *Date `json:"last"`
	}

	d := New(2025, time.March, 14)
	data, err := json.Marshal(record{Day: d, Last: &d})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"day":"2025-03-14","last":"2025-03-14"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var got record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Day.Equal(d) || got.Last == nil || !got.Last.Equal(d) {
		t.Errorf("round trip = %+v", got)
	}

	var nullable record
	if err := json.Unmarshal([]byte(`{"day":"2025-03-14","last":null}`), &nullable); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if nullable.Last != nil {
		t.Errorf("null should leave pointer nil, got %v", nullable.Last)
	}

	var bad Date
	if err := json.Unmarshal([]byte(`20250314`), &bad); err == nil {
		t.Error("expected error for non-string date")
	}
}

func TestPeriodKeys(t *testing.T) {
	t.Run("same ISO week shares a key", func(t *testing.T) {
		// 2025-02-10 (Mon) and 2025-02-16 (Sun) are both ISO week 7.
		if WeekKey(New(2025, 2, 10)) != WeekKey(New(2025, 2, 16)) {
			t.Error("dates in the same ISO week should share a week key")
		}
		if got := WeekKey(New(2025, 2, 10)); got != "2025-W07" {
			t.Errorf("WeekKey = %q, want 2025-W07", got)
		}
	})

	t.Run("adjacent days straddling a week boundary differ", func(t *testing.T) {
		// Sunday 2025-02-16 ends ISO week 7; Monday 2025-02-17 begins week 8.
		if WeekKey(New(2025, 2, 16)) == WeekKey(New(2025, 2, 17)) {
			t.Error("week key should roll over at the ISO week boundary")
		}
	})

	t.Run("ISO year differs from calendar year at the edges", func(t *testing.T) {
		// 2024-12-30 (Mon) belongs to ISO week 1 of 2025.
		if got := WeekKey(New(2024, 12, 30)); got != "2025-W01" {
			t.Errorf("WeekKey = %q, want 2025-W01", got)
		}
	})

	t.Run("month and quarter keys", func(t *testing.T) {
		if got := MonthKey(New(2025, 2, 28)); got != "2025-02" {
			t.Errorf("MonthKey = %q", got)
		}
		if MonthKey(New(2025, 2, 28)) == MonthKey(New(2025, 3, 1)) {
			t.Error("month key should change at the month boundary")
		}
		if got := QuarterKey(New(2025, 3, 31)); got != "2025-Q1" {
			t.Errorf("QuarterKey = %q", got)
		}
		if got := QuarterKey(New(2025, 4, 1)); got != "2025-Q2" {
			t.Errorf("QuarterKey = %q", got)
		}
	})
}
