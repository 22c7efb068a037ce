package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentCard is one candidate item in a user's featured-content pool
// (an affirmation, intention, or focus card). The engine receives the
// pool fresh on every evaluation and holds no reference to it.
type ContentCard struct {
	ContentID uuid.UUID `json:"content_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
