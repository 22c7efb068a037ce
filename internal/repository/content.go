package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/daybreak-app/daybreak/internal/database"
	"github.com/daybreak-app/daybreak/internal/models"
)

// ContentRepository manages a user's featured-content pool.
type ContentRepository struct {
	db *database.DB
}

func NewContentRepository(db *database.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Pool returns the user's content cards in their stable display order.
func (r *ContentRepository) Pool(ctx context.Context, userID int64) ([]models.ContentCard, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT content_id, user_id, text, position, created_at
		 FROM content_card WHERE user_id = $1
		 ORDER BY position ASC, created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.ContentCard
	for rows.Next() {
		var card models.ContentCard
		if err := rows.Scan(&card.ContentID, &card.UserID, &card.Text, &card.Position, &card.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (r *ContentRepository) Create(ctx context.Context, card *models.ContentCard) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO content_card (user_id, text, position)
		 VALUES ($1, $2, $3)
		 RETURNING content_id, created_at`,
		card.UserID, card.Text, card.Position,
	).Scan(&card.ContentID, &card.CreatedAt)
}

func (r *ContentRepository) Delete(ctx context.Context, contentID uuid.UUID, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM content_card WHERE content_id = $1 AND user_id = $2`,
		contentID, userID,
	)
	return err
}
