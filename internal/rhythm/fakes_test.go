package rhythm

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/models"
)

// fakeStatusStore is an in-memory StatusStore enforcing the same
// (user, date) uniqueness constraint the database does.
type fakeStatusStore struct {
	mu      sync.Mutex
	rows    map[string]*models.DailyRhythmStatus
	inserts int
	getErr  error
	insErr  error
}

func newFakeStatusStore() *fakeStatusStore {
	return &fakeStatusStore{rows: map[string]*models.DailyRhythmStatus{}}
}

func statusKey(userID int64, day calendar.Date) string {
	return fmt.Sprintf("%d/%s", userID, day)
}

func (f *fakeStatusStore) Get(ctx context.Context, userID int64, day calendar.Date) (*models.DailyRhythmStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.rows[statusKey(userID, day)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeStatusStore) Insert(ctx context.Context, userID int64, day calendar.Date) (*models.DailyRhythmStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insErr != nil {
		return nil, f.insErr
	}
	key := statusKey(userID, day)
	if _, ok := f.rows[key]; ok {
		return nil, ErrConflict
	}
	f.inserts++
	row := &models.DailyRhythmStatus{ID: uuid.New(), UserID: userID, Date: day}
	f.rows[key] = row
	copied := *row
	return &copied, nil
}

func (f *fakeStatusStore) Update(ctx context.Context, status *models.DailyRhythmStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, row := range f.rows {
		if row.ID == status.ID {
			copied := *status
			f.rows[key] = &copied
			return nil
		}
	}
	return ErrNotFound
}

type fakeSettings struct {
	settings *models.RhythmSettings
}

func (f *fakeSettings) Rhythm(ctx context.Context, userID int64) (*models.RhythmSettings, error) {
	copied := *f.settings
	return &copied, nil
}

type fakeHistory struct {
	completions []models.CompletionRecord
	promptDates map[models.PromptKind][]calendar.Date
}

func (f *fakeHistory) Completions(ctx context.Context, userID int64, habitKey string, limit int) ([]models.CompletionRecord, error) {
	return f.completions, nil
}

func (f *fakeHistory) PromptCompletions(ctx context.Context, userID int64, kind models.PromptKind, limit int) ([]calendar.Date, error) {
	return f.promptDates[kind], nil
}

type fakeMarks struct {
	marked map[string]bool
}

func newFakeMarks() *fakeMarks {
	return &fakeMarks{marked: map[string]bool{}}
}

func markKey(kind models.ReflectionKind, periodKey string) string {
	return string(kind) + "/" + periodKey
}

func (f *fakeMarks) Marked(ctx context.Context, userID int64, kind models.ReflectionKind, periodKey string) (bool, error) {
	return f.marked[markKey(kind, periodKey)], nil
}

func (f *fakeMarks) Mark(ctx context.Context, userID int64, kind models.ReflectionKind, periodKey string) error {
	f.marked[markKey(kind, periodKey)] = true
	return nil
}

type fakeContent struct {
	cards []models.ContentCard
}

func (f *fakeContent) Pool(ctx context.Context, userID int64) ([]models.ContentCard, error) {
	return f.cards, nil
}
