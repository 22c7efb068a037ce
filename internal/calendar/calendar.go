// Package calendar provides timezone-local calendar dates with no
// time-of-day component. All arithmetic is done on whole days so that
// daylight-savings transitions can never shift a result by a partial day.
package calendar

import (
	"fmt"
	"time"
)

// DefaultTimezone is used whenever an invalid or empty IANA timezone
// name is supplied. Lookups fail closed rather than erroring.
const DefaultTimezone = "UTC"

const dateLayout = "2006-01-02"

// Date is a calendar date (year, month, day) with no time component.
// The zero value is treated as "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns a normalized Date. Out-of-range components roll over the
// same way time.Date does (e.g. Feb 30 becomes Mar 1 or 2).
func New(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf extracts the calendar date from t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse parses a date in YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Location resolves an IANA timezone name, falling back to the default
// timezone when the name is empty or unknown. It never fails.
func Location(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DateIn returns the calendar date of the instant t in the given timezone.
func DateIn(t time.Time, timezone string) Date {
	return DateOf(t.In(Location(timezone)))
}

// HourIn returns the hour [0,23] of the instant t in the given timezone.
func HourIn(t time.Time, timezone string) int {
	return t.In(Location(timezone)).Hour()
}

// Today returns the current calendar date in the given timezone.
func Today(timezone string) Date {
	return DateIn(time.Now(), timezone)
}

func (d Date) String() string {
	return d.Time(time.UTC).Format(dateLayout)
}

// MarshalJSON renders the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a "YYYY-MM-DD" string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("parse date %s: not a JSON string", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Time returns midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// AddMonths returns the date n calendar months after d. When the source
// day does not exist in the target month it clamps to the month's last
// day, so Jan 31 + 1 month is Feb 28 (or 29), never Mar 2/3.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := d.Day
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return Date{Year: first.Year(), Month: first.Month(), Day: day}
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the day of week, with Sunday = 0.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) Before(o Date) bool { return d.Ordinal() < o.Ordinal() }
func (d Date) After(o Date) bool  { return d.Ordinal() > o.Ordinal() }
func (d Date) Equal(o Date) bool  { return d == o }

// Ordinal returns the number of whole days since the Unix epoch.
// Useful as a stable day counter for deterministic rotation.
func (d Date) Ordinal() int {
	return int(d.Time(time.UTC).Unix() / 86400)
}

// DaysSince returns the signed number of days from o to d.
func (d Date) DaysSince(o Date) int {
	return d.Ordinal() - o.Ordinal()
}

// Min and Max report the earlier/later of two dates.
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

func Max(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}
