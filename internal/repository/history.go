package repository

import (
	"context"
	"time"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/database"
	"github.com/daybreak-app/daybreak/internal/models"
)

// HistoryRepository reads the append-only completion log.
type HistoryRepository struct {
	db *database.DB
}

func NewHistoryRepository(db *database.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Completions returns a habit's completion records, newest first.
func (r *HistoryRepository) Completions(ctx context.Context, userID int64, habitKey string, limit int) ([]models.CompletionRecord, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT date, completed FROM completion_log
		 WHERE user_id = $1 AND habit_key = $2
		 ORDER BY date DESC
		 LIMIT $3`,
		userID, habitKey, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.CompletionRecord
	for rows.Next() {
		var day time.Time
		var completed bool
		if err := rows.Scan(&day, &completed); err != nil {
			return nil, err
		}
		records = append(records, models.CompletionRecord{
			Date:      calendar.DateOf(day),
			Completed: completed,
		})
	}
	return records, rows.Err()
}

// PromptCompletions returns the dates a journaling prompt was completed,
// newest first. Prompt completions are logged under a "prompt:" key so
// they share the completion table with task habits.
func (r *HistoryRepository) PromptCompletions(ctx context.Context, userID int64, kind models.PromptKind, limit int) ([]calendar.Date, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT date FROM completion_log
		 WHERE user_id = $1 AND habit_key = $2 AND completed = TRUE
		 ORDER BY date DESC
		 LIMIT $3`,
		userID, promptKey(kind), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []calendar.Date
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		dates = append(dates, calendar.DateOf(day))
	}
	return dates, rows.Err()
}

// Record appends a completion entry. The (user, habit, date) key is
// unique; recording the same completion twice upserts the flag, which
// keeps the operation idempotent per day.
func (r *HistoryRepository) Record(ctx context.Context, userID int64, habitKey string, day calendar.Date, completed bool) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO completion_log (user_id, habit_key, date, completed)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, habit_key, date) DO UPDATE SET completed = EXCLUDED.completed`,
		userID, habitKey, day.Time(time.UTC), completed,
	)
	return err
}

// RecordPrompt appends a prompt completion for the given day.
func (r *HistoryRepository) RecordPrompt(ctx context.Context, userID int64, kind models.PromptKind, day calendar.Date) error {
	return r.Record(ctx, userID, promptKey(kind), day, true)
}

func promptKey(kind models.PromptKind) string {
	return "prompt:" + string(kind)
}
