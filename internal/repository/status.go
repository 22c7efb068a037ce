package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/database"
	"github.com/daybreak-app/daybreak/internal/models"
	"github.com/daybreak-app/daybreak/internal/rhythm"
)

const uniqueViolation = "23505"

// StatusRepository persists daily_rhythm_status rows. The table's
// UNIQUE (user_id, date) constraint is the sole mutual exclusion the
// engine relies on for concurrent first-access.
type StatusRepository struct {
	db *database.DB
}

func NewStatusRepository(db *database.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

const statusColumns = `id, user_id, date, reveille_dismissed, reckoning_dismissed,
	gratitude_done, joy_done, anticipation_done,
	content_morning_id, content_evening_id, created_at, updated_at`

func (r *StatusRepository) Get(ctx context.Context, userID int64, day calendar.Date) (*models.DailyRhythmStatus, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+statusColumns+` FROM daily_rhythm_status WHERE user_id = $1 AND date = $2`,
		userID, day.Time(time.UTC),
	)
	status, err := scanStatus(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, rhythm.ErrNotFound
	}
	return status, err
}

func (r *StatusRepository) Insert(ctx context.Context, userID int64, day calendar.Date) (*models.DailyRhythmStatus, error) {
	row := r.db.Pool.QueryRow(ctx,
		`INSERT INTO daily_rhythm_status (user_id, date) VALUES ($1, $2)
		 RETURNING `+statusColumns,
		userID, day.Time(time.UTC),
	)
	status, err := scanStatus(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, rhythm.ErrConflict
	}
	return status, err
}

func (r *StatusRepository) Update(ctx context.Context, status *models.DailyRhythmStatus) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE daily_rhythm_status SET
		    reveille_dismissed = $1,
		    reckoning_dismissed = $2,
		    gratitude_done = $3,
		    joy_done = $4,
		    anticipation_done = $5,
		    content_morning_id = $6,
		    content_evening_id = $7,
		    updated_at = $8
		 WHERE id = $9`,
		status.ReveilleDismissed,
		status.ReckoningDismissed,
		status.GratitudeDone,
		status.JoyDone,
		status.AnticipationDone,
		status.ContentMorningID,
		status.ContentEveningID,
		time.Now(),
		status.ID,
	)
	if err != nil {
		return fmt.Errorf("update rhythm status %s: %w", status.ID, err)
	}
	return nil
}

func scanStatus(row pgx.Row) (*models.DailyRhythmStatus, error) {
	status := &models.DailyRhythmStatus{}
	var day time.Time
	err := row.Scan(
		&status.ID,
		&status.UserID,
		&day,
		&status.ReveilleDismissed,
		&status.ReckoningDismissed,
		&status.GratitudeDone,
		&status.JoyDone,
		&status.AnticipationDone,
		&status.ContentMorningID,
		&status.ContentEveningID,
		&status.CreatedAt,
		&status.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	status.Date = calendar.DateOf(day)
	return status, nil
}
