// Package rhythm decides when daily and periodic rituals are shown.
// It owns the per-day status lifecycle and the trigger evaluation; all
// storage access goes through the narrow contracts declared here.
package rhythm

import (
	"context"
	"errors"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/models"
)

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("rhythm: not found")
	// ErrConflict indicates an insert lost a uniqueness race; the row
	// now exists and should be re-read.
	ErrConflict = errors.New("rhythm: already exists")
)

// StatusStore persists DailyRhythmStatus rows. Implementations must
// enforce a uniqueness constraint on (user, date) and return
// ErrConflict from Insert when it is violated.
type StatusStore interface {
	Get(ctx context.Context, userID int64, day calendar.Date) (*models.DailyRhythmStatus, error)
	Insert(ctx context.Context, userID int64, day calendar.Date) (*models.DailyRhythmStatus, error)
	Update(ctx context.Context, status *models.DailyRhythmStatus) error
}

// SettingsReader supplies a user's rhythm configuration.
type SettingsReader interface {
	Rhythm(ctx context.Context, userID int64) (*models.RhythmSettings, error)
}

// HistoryReader supplies ordered completion history. Completions
// returns records for one habit, newest first. PromptCompletions
// returns the dates a prompt was last completed, newest first.
type HistoryReader interface {
	Completions(ctx context.Context, userID int64, habitKey string, limit int) ([]models.CompletionRecord, error)
	PromptCompletions(ctx context.Context, userID int64, kind models.PromptKind, limit int) ([]calendar.Date, error)
}

// PeriodMarkStore records that a periodic reflection was handled
// (dismissed or completed) under a period key.
type PeriodMarkStore interface {
	Marked(ctx context.Context, userID int64, kind models.ReflectionKind, periodKey string) (bool, error)
	Mark(ctx context.Context, userID int64, kind models.ReflectionKind, periodKey string) error
}

// ContentReader supplies the user's featured-content pool, in stable
// order.
type ContentReader interface {
	Pool(ctx context.Context, userID int64) ([]models.ContentCard, error)
}
