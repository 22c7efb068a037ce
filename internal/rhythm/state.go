package rhythm

import (
	"context"
	"errors"
	"fmt"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/models"
)

// StateManager is the memory the rhythm engine reads and writes
// through: one status row per user per local calendar date, created
// lazily and updated idempotently.
type StateManager struct {
	store StatusStore
}

func NewStateManager(store StatusStore) *StateManager {
	return &StateManager{store: store}
}

// GetOrCreate returns today's status row, creating it on first access.
// Two concurrent first-accesses race on the insert; the loser gets a
// uniqueness conflict and re-reads the winner's row, so exactly one
// row ever exists per (user, date). Errors other than the conflict
// propagate unchanged: callers must never fabricate a status row,
// since that would break idempotency.
func (m *StateManager) GetOrCreate(ctx context.Context, userID int64, day calendar.Date) (*models.DailyRhythmStatus, error) {
	status, err := m.store.Get(ctx, userID, day)
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("get rhythm status: %w", err)
	}

	status, err = m.store.Insert(ctx, userID, day)
	if err == nil {
		return status, nil
	}
	if errors.Is(err, ErrConflict) {
		return m.store.Get(ctx, userID, day)
	}
	return nil, fmt.Errorf("create rhythm status: %w", err)
}

// Dismiss marks a rhythm as dismissed for the status row's day. Safe
// to call repeatedly; only the first call writes.
func (m *StateManager) Dismiss(ctx context.Context, status *models.DailyRhythmStatus, kind models.RhythmKind) error {
	if status.Dismissed(kind) {
		return nil
	}
	status.SetDismissed(kind)
	return m.store.Update(ctx, status)
}

// CompletePrompt marks a journaling prompt as completed today.
func (m *StateManager) CompletePrompt(ctx context.Context, status *models.DailyRhythmStatus, kind models.PromptKind) error {
	if status.PromptDone(kind) {
		return nil
	}
	status.SetPromptDone(kind)
	return m.store.Update(ctx, status)
}

// Save persists pending field changes on a status row (rotation
// selections in particular).
func (m *StateManager) Save(ctx context.Context, status *models.DailyRhythmStatus) error {
	return m.store.Update(ctx, status)
}
