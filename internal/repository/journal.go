package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daybreak-app/daybreak/internal/database"
	"github.com/daybreak-app/daybreak/internal/models"
)

// JournalRepository persists free-form journal captures for the triage
// worker.
type JournalRepository struct {
	db *database.DB
}

func NewJournalRepository(db *database.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Create(ctx context.Context, entry *models.JournalEntry) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO journal_entry (user_id, prompt, body, tags)
		 VALUES ($1, $2, $3, $4)
		 RETURNING entry_id, created_at`,
		entry.UserID, entry.Prompt, entry.Body, entry.Tags,
	).Scan(&entry.EntryID, &entry.CreatedAt)
}

// ListUntriaged returns entries that have not yet been tagged, oldest
// first, up to limit.
func (r *JournalRepository) ListUntriaged(ctx context.Context, limit int) ([]*models.JournalEntry, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT entry_id, user_id, prompt, body, tags, triaged_at, created_at
		 FROM journal_entry WHERE triaged_at IS NULL
		 ORDER BY created_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.JournalEntry
	for rows.Next() {
		entry := &models.JournalEntry{}
		if err := rows.Scan(&entry.EntryID, &entry.UserID, &entry.Prompt,
			&entry.Body, &entry.Tags, &entry.TriagedAt, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// SetTags stores the triage result and stamps the entry as triaged.
func (r *JournalRepository) SetTags(ctx context.Context, entryID uuid.UUID, tags []string) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE journal_entry SET tags = $1, triaged_at = $2 WHERE entry_id = $3`,
		tags, time.Now(), entryID,
	)
	return err
}
