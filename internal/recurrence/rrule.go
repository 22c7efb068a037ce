package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/daybreak-app/daybreak/internal/models"
)

// RuleString renders a schedule's recurrence as a canonical RFC 5545
// RRULE string. Schedules persist this alongside their own frequency
// fields so calendar clients can subscribe to them without knowing
// anything about the engine's date math.
func RuleString(frequency models.ScheduleFrequency, preferredDay *time.Weekday, customDays *int) string {
	opt := rrule.ROption{Freq: rrule.WEEKLY, Interval: 1}

	switch frequency {
	case models.FrequencyBiweekly:
		opt.Interval = 2
	case models.FrequencyMonthly:
		opt.Freq = rrule.MONTHLY
	case models.FrequencyQuarterly:
		opt.Freq = rrule.MONTHLY
		opt.Interval = 3
	case models.FrequencyCustom:
		opt.Freq = rrule.DAILY
		opt.Interval = DefaultCustomIntervalDays
		if customDays != nil && *customDays > 0 {
			opt.Interval = *customDays
		}
	}

	if preferredDay != nil && (opt.Freq == rrule.WEEKLY) {
		opt.Byweekday = []rrule.Weekday{weekdayToRRule(*preferredDay)}
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return ""
	}
	return rule.String()
}

func weekdayToRRule(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}
