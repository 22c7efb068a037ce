package repository

import (
	"context"

	"github.com/daybreak-app/daybreak/internal/database"
	"github.com/daybreak-app/daybreak/internal/models"
)

// ReflectionRepository stores period-keyed reflection marks: one row
// per (user, kind, period key) once the card has been dismissed or
// completed for that period.
type ReflectionRepository struct {
	db *database.DB
}

func NewReflectionRepository(db *database.DB) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

func (r *ReflectionRepository) Marked(ctx context.Context, userID int64, kind models.ReflectionKind, periodKey string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(
		    SELECT 1 FROM reflection_mark
		    WHERE user_id = $1 AND kind = $2 AND period_key = $3
		 )`,
		userID, kind, periodKey,
	).Scan(&exists)
	return exists, err
}

func (r *ReflectionRepository) Mark(ctx context.Context, userID int64, kind models.ReflectionKind, periodKey string) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO reflection_mark (user_id, kind, period_key) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, kind, period_key) DO NOTHING`,
		userID, kind, periodKey,
	)
	return err
}
