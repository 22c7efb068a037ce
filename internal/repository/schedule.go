package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/database"
	"github.com/daybreak-app/daybreak/internal/models"
	"github.com/daybreak-app/daybreak/internal/recurrence"
	"github.com/daybreak-app/daybreak/internal/rhythm"
)

// ScheduleRepository persists recurring meeting-style schedules.
// Due-date state only moves forward here, through the recurrence
// calculator, on completion or skip.
type ScheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = `schedule_id, user_id, title, frequency, preferred_day,
	custom_interval_days, last_completed_date, next_due_date, rrule, created_at`

// Create inserts a schedule, computing its first due date and the
// canonical RRULE string from the recurrence fields.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule, today calendar.Date) error {
	schedule.NextDueDate = recurrence.NextScheduleDueDate(
		schedule.Frequency, schedule.PreferredDay, nil, schedule.CustomIntervalDays, today,
	)
	schedule.RRule = recurrence.RuleString(schedule.Frequency, schedule.PreferredDay, schedule.CustomIntervalDays)

	var preferred *int16
	if schedule.PreferredDay != nil {
		v := int16(*schedule.PreferredDay)
		preferred = &v
	}
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO schedule (user_id, title, frequency, preferred_day, custom_interval_days, next_due_date, rrule)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING schedule_id, created_at`,
		schedule.UserID, schedule.Title, schedule.Frequency, preferred,
		schedule.CustomIntervalDays, schedule.NextDueDate.Time(time.UTC), schedule.RRule,
	).Scan(&schedule.ScheduleID, &schedule.CreatedAt)
}

func (r *ScheduleRepository) GetByID(ctx context.Context, scheduleID uuid.UUID, userID int64) (*models.Schedule, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedule WHERE schedule_id = $1 AND user_id = $2`,
		scheduleID, userID,
	)
	schedule, err := scanSchedule(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, rhythm.ErrNotFound
	}
	return schedule, err
}

// ListDue returns schedules due on or before the given date.
func (r *ScheduleRepository) ListDue(ctx context.Context, userID int64, today calendar.Date) ([]*models.Schedule, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedule
		 WHERE user_id = $1 AND next_due_date <= $2
		 ORDER BY next_due_date ASC`,
		userID, today.Time(time.UTC),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, rows.Err()
}

// Complete records that a schedule happened today and rolls its due
// date forward from today.
func (r *ScheduleRepository) Complete(ctx context.Context, schedule *models.Schedule, today calendar.Date) error {
	completed := today
	schedule.LastCompletedDate = &completed
	schedule.NextDueDate = recurrence.NextScheduleDueDate(
		schedule.Frequency, schedule.PreferredDay, schedule.LastCompletedDate, schedule.CustomIntervalDays, today,
	)
	return r.saveDueState(ctx, schedule)
}

// Skip pushes a schedule's due date forward one interval without
// recording a completion.
func (r *ScheduleRepository) Skip(ctx context.Context, schedule *models.Schedule, today calendar.Date) error {
	base := calendar.Max(schedule.NextDueDate, today)
	schedule.NextDueDate = recurrence.NextScheduleDueDate(
		schedule.Frequency, schedule.PreferredDay, &base, schedule.CustomIntervalDays, today,
	)
	return r.saveDueState(ctx, schedule)
}

func (r *ScheduleRepository) Delete(ctx context.Context, scheduleID uuid.UUID, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM schedule WHERE schedule_id = $1 AND user_id = $2`,
		scheduleID, userID,
	)
	return err
}

func (r *ScheduleRepository) saveDueState(ctx context.Context, schedule *models.Schedule) error {
	var last *time.Time
	if schedule.LastCompletedDate != nil {
		t := schedule.LastCompletedDate.Time(time.UTC)
		last = &t
	}
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE schedule SET last_completed_date = $1, next_due_date = $2
		 WHERE schedule_id = $3`,
		last, schedule.NextDueDate.Time(time.UTC), schedule.ScheduleID,
	)
	if err != nil {
		return fmt.Errorf("update schedule %s due state: %w", schedule.ScheduleID, err)
	}
	return nil
}

func scanSchedule(row pgx.Row) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	var preferred *int16
	var last *time.Time
	var next time.Time
	err := row.Scan(
		&schedule.ScheduleID,
		&schedule.UserID,
		&schedule.Title,
		&schedule.Frequency,
		&preferred,
		&schedule.CustomIntervalDays,
		&last,
		&next,
		&schedule.RRule,
		&schedule.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if preferred != nil {
		wd := time.Weekday(*preferred)
		schedule.PreferredDay = &wd
	}
	if last != nil {
		d := calendar.DateOf(*last)
		schedule.LastCompletedDate = &d
	}
	schedule.NextDueDate = calendar.DateOf(next)
	return schedule, nil
}
