package rhythm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/models"
	"github.com/daybreak-app/daybreak/internal/rotation"
	"github.com/daybreak-app/daybreak/internal/streak"
)

// Evaluator decides which rhythms are currently due for a user. It is
// queried on demand (client load), never from a background process;
// daily state resets implicitly because every evaluation is scoped to
// the status row of "today" in the user's timezone.
type Evaluator struct {
	settings SettingsReader
	states   *StateManager
	history  HistoryReader
	marks    PeriodMarkStore
	content  ContentReader
}

func NewEvaluator(
	settings SettingsReader,
	states *StateManager,
	history HistoryReader,
	marks PeriodMarkStore,
	content ContentReader,
) *Evaluator {
	return &Evaluator{
		settings: settings,
		states:   states,
		history:  history,
		marks:    marks,
		content:  content,
	}
}

// ShouldShow reports whether a daily rhythm should be shown at the
// instant now. A morning rhythm shows inside [startHour, 12) local
// time, an evening rhythm inside [startHour, 24), and only while the
// rhythm is enabled and not yet dismissed today.
func (e *Evaluator) ShouldShow(ctx context.Context, userID int64, kind models.RhythmKind, now time.Time) (bool, error) {
	settings, err := e.settings.Rhythm(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load rhythm settings: %w", err)
	}
	if !settings.RhythmEnabled(kind) {
		return false, nil
	}

	hour := calendar.HourIn(now, settings.Timezone)
	start := settings.StartHour(kind)
	end := 12
	if kind == models.RhythmReckoning {
		end = 24
	}
	if hour < start || hour >= end {
		return false, nil
	}

	today := calendar.DateIn(now, settings.Timezone)
	status, err := e.states.GetOrCreate(ctx, userID, today)
	if err != nil {
		return false, err
	}
	return !status.Dismissed(kind), nil
}

// DueReflections returns the periodic reflection cards due at now:
// those with no dismissal or completion recorded under the current
// period key. A card dismissed last week is due again this week even
// if only one day has passed, because the key rolled over.
func (e *Evaluator) DueReflections(ctx context.Context, userID int64, now time.Time) ([]models.ReflectionKind, error) {
	settings, err := e.settings.Rhythm(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load rhythm settings: %w", err)
	}
	today := calendar.DateIn(now, settings.Timezone)

	var due []models.ReflectionKind
	for _, kind := range []models.ReflectionKind{models.ReflectWeekly, models.ReflectMonthly, models.ReflectQuarterly} {
		marked, err := e.marks.Marked(ctx, userID, kind, PeriodKey(kind, today))
		if err != nil {
			return nil, fmt.Errorf("check reflection mark: %w", err)
		}
		if !marked {
			due = append(due, kind)
		}
	}
	return due, nil
}

// ResolveReflection records that a reflection card was handled
// (dismissed or completed) for the current period.
func (e *Evaluator) ResolveReflection(ctx context.Context, userID int64, kind models.ReflectionKind, now time.Time) error {
	settings, err := e.settings.Rhythm(ctx, userID)
	if err != nil {
		return fmt.Errorf("load rhythm settings: %w", err)
	}
	today := calendar.DateIn(now, settings.Timezone)
	return e.marks.Mark(ctx, userID, kind, PeriodKey(kind, today))
}

// PeriodKey returns the period key a reflection kind is scoped to on
// the given date.
func PeriodKey(kind models.ReflectionKind, d calendar.Date) string {
	switch kind {
	case models.ReflectMonthly:
		return calendar.MonthKey(d)
	case models.ReflectQuarterly:
		return calendar.QuarterKey(d)
	default:
		return calendar.WeekKey(d)
	}
}

// PromptDue reports whether a journaling prompt should surface today:
// not already completed today, and not completed within its configured
// frequency window.
func (e *Evaluator) PromptDue(ctx context.Context, userID int64, kind models.PromptKind, now time.Time) (bool, error) {
	settings, err := e.settings.Rhythm(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load rhythm settings: %w", err)
	}
	today := calendar.DateIn(now, settings.Timezone)

	status, err := e.states.GetOrCreate(ctx, userID, today)
	if err != nil {
		return false, err
	}
	if status.PromptDone(kind) {
		return false, nil
	}

	every := settings.PromptFrequencies.For(kind)
	if every <= 1 {
		return true, nil
	}
	last, err := e.history.PromptCompletions(ctx, userID, kind, 1)
	if err != nil {
		return false, fmt.Errorf("load prompt history: %w", err)
	}
	if len(last) == 0 {
		return true, nil
	}
	return today.DaysSince(last[0]) >= every, nil
}

// FeaturedContent returns the content card chosen for a slot today,
// persisting a fresh selection when one was made. An empty pool yields
// uuid.Nil with no error.
func (e *Evaluator) FeaturedContent(ctx context.Context, userID int64, slot models.DaySlot, now time.Time) (uuid.UUID, error) {
	settings, err := e.settings.Rhythm(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load rhythm settings: %w", err)
	}
	today := calendar.DateIn(now, settings.Timezone)

	status, err := e.states.GetOrCreate(ctx, userID, today)
	if err != nil {
		return uuid.Nil, err
	}
	pool, err := e.content.Pool(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load content pool: %w", err)
	}

	chosen, changed := rotation.Select(pool, slot, status, settings.RotationPolicy, settings.PinnedContentID, today)
	if changed {
		if err := e.states.Save(ctx, status); err != nil {
			return uuid.Nil, fmt.Errorf("persist rotation selection: %w", err)
		}
	}
	return chosen, nil
}

// HabitStreak assembles the streak summary for one habit, for streak
// displays inside a due rhythm.
func (e *Evaluator) HabitStreak(ctx context.Context, userID int64, habitKey string, kind models.ScheduleKind, now time.Time) (streak.Summary, error) {
	settings, err := e.settings.Rhythm(ctx, userID)
	if err != nil {
		return streak.Summary{}, fmt.Errorf("load rhythm settings: %w", err)
	}
	today := calendar.DateIn(now, settings.Timezone)

	history, err := e.history.Completions(ctx, userID, habitKey, 400)
	if err != nil {
		return streak.Summary{}, fmt.Errorf("load completion history: %w", err)
	}
	return streak.Calculate(history, kind, today), nil
}
