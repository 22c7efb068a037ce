package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/daybreak-app/daybreak/internal/database"
	"github.com/daybreak-app/daybreak/internal/models"
)

// SettingsRepository persists per-user rhythm settings.
type SettingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const settingsColumns = `user_id, timezone, reveille_enabled, reveille_time,
	reckoning_enabled, reckoning_time, rotation_policy, pinned_content_id,
	prompt_frequencies, updated_at`

// Rhythm retrieves a user's settings, creating default settings on
// first access.
func (r *SettingsRepository) Rhythm(ctx context.Context, userID int64) (*models.RhythmSettings, error) {
	settings := &models.RhythmSettings{}
	var frequenciesJSON []byte

	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO rhythm_settings (user_id) VALUES ($1)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING `+settingsColumns,
		userID,
	).Scan(
		&settings.UserID,
		&settings.Timezone,
		&settings.ReveilleEnabled,
		&settings.ReveilleTime,
		&settings.ReckoningEnabled,
		&settings.ReckoningTime,
		&settings.RotationPolicy,
		&settings.PinnedContentID,
		&frequenciesJSON,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get rhythm settings for %d: %w", userID, err)
	}

	if err := settings.PromptFrequencies.UnmarshalJSON(frequenciesJSON); err != nil {
		settings.PromptFrequencies = models.DefaultPromptFrequencies()
	}
	return settings, nil
}

// Update persists user-edited settings after validating them.
func (r *SettingsRepository) Update(ctx context.Context, settings *models.RhythmSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid rhythm settings: %w", err)
	}

	frequenciesJSON, err := settings.PromptFrequencies.MarshalJSON()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx,
		`UPDATE rhythm_settings SET
		    timezone = $1,
		    reveille_enabled = $2,
		    reveille_time = $3,
		    reckoning_enabled = $4,
		    reckoning_time = $5,
		    rotation_policy = $6,
		    pinned_content_id = $7,
		    prompt_frequencies = $8,
		    updated_at = $9
		 WHERE user_id = $10`,
		settings.Timezone,
		settings.ReveilleEnabled,
		settings.ReveilleTime,
		settings.ReckoningEnabled,
		settings.ReckoningTime,
		settings.RotationPolicy,
		settings.PinnedContentID,
		frequenciesJSON,
		time.Now(),
		settings.UserID,
	)
	return err
}
