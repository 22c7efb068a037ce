package models

// RecurrenceRule governs how a task repeats after completion.
type RecurrenceRule string

const (
	RecurrenceNone     RecurrenceRule = "none"
	RecurrenceDaily    RecurrenceRule = "daily"
	RecurrenceWeekdays RecurrenceRule = "weekdays"
	RecurrenceWeekly   RecurrenceRule = "weekly"
)

// ScheduleFrequency governs how a recurring schedule (meeting-style
// obligation) repeats.
type ScheduleFrequency string

const (
	FrequencyWeekly    ScheduleFrequency = "weekly"
	FrequencyBiweekly  ScheduleFrequency = "biweekly"
	FrequencyMonthly   ScheduleFrequency = "monthly"
	FrequencyQuarterly ScheduleFrequency = "quarterly"
	FrequencyCustom    ScheduleFrequency = "custom"
)

// ScheduleKind is the cadence a streak is measured against.
type ScheduleKind string

const (
	KindDaily    ScheduleKind = "daily"
	KindWeekdays ScheduleKind = "weekdays"
	KindWeekly   ScheduleKind = "weekly"
)

// RotationPolicy selects how featured content rotates across days.
type RotationPolicy string

const (
	RotateDaily     RotationPolicy = "daily"
	RotateWeekly    RotationPolicy = "weekly"
	RotateEveryOpen RotationPolicy = "every_open"
	RotateManual    RotationPolicy = "manual"
)

// RhythmKind identifies a daily time-windowed ritual.
type RhythmKind string

const (
	RhythmReveille  RhythmKind = "reveille"  // morning brief
	RhythmReckoning RhythmKind = "reckoning" // evening brief
)

// ReflectionKind identifies a periodic reflection card.
type ReflectionKind string

const (
	ReflectWeekly    ReflectionKind = "weekly"
	ReflectMonthly   ReflectionKind = "monthly"
	ReflectQuarterly ReflectionKind = "quarterly"
)

// PromptKind identifies a journaling prompt.
type PromptKind string

const (
	PromptGratitude    PromptKind = "gratitude"
	PromptJoy          PromptKind = "joy"
	PromptAnticipation PromptKind = "anticipation"
)

// DaySlot is a time-of-day slot for featured content.
type DaySlot string

const (
	SlotMorning DaySlot = "morning"
	SlotEvening DaySlot = "evening"
)
