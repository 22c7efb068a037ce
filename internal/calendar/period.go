package calendar

import (
	"fmt"
	"time"
)

// Period keys identify a calendar period as an opaque string, so that
// "once per period" state can be keyed independently of which day in
// the period it was recorded on. Two dates in the same ISO week, month
// or quarter share a key; any rollover changes it.

// WeekKey returns the ISO-8601 week key, e.g. "2025-W07".
func WeekKey(d Date) string {
	year, week := d.Time(time.UTC).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthKey returns the month key, e.g. "2025-02".
func MonthKey(d Date) string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// QuarterKey returns the quarter key, e.g. "2025-Q1".
func QuarterKey(d Date) string {
	quarter := (int(d.Month)-1)/3 + 1
	return fmt.Sprintf("%04d-Q%d", d.Year, quarter)
}
