package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a free-form capture. Entries start untriaged; the
// background triage worker fills in Tags via the AI collaborator.
type JournalEntry struct {
	EntryID   uuid.UUID   `json:"entry_id"`
	UserID    int64       `json:"user_id"`
	Prompt    *PromptKind `json:"prompt"` // nil for free-form captures
	Body      string      `json:"body"`
	Tags      []string    `json:"tags"`
	TriagedAt *time.Time  `json:"triaged_at"`
	CreatedAt time.Time   `json:"created_at"`
}

func (e *JournalEntry) IsTriaged() bool {
	return e.TriagedAt != nil
}
