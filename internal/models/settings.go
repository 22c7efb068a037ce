package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PromptFrequencies configures how often (in days) each journaling
// prompt should resurface. Stored as a jsonb column.
type PromptFrequencies struct {
	Gratitude    int `json:"gratitude" validate:"min=0,max=365"`
	Joy          int `json:"joy" validate:"min=0,max=365"`
	Anticipation int `json:"anticipation" validate:"min=0,max=365"`
}

// DefaultPromptFrequencies returns the out-of-the-box prompt cadence.
func DefaultPromptFrequencies() PromptFrequencies {
	return PromptFrequencies{
		Gratitude:    1, // every day
		Joy:          2,
		Anticipation: 7,
	}
}

// For returns the configured frequency in days for a prompt kind.
func (f PromptFrequencies) For(kind PromptKind) int {
	switch kind {
	case PromptJoy:
		return f.Joy
	case PromptAnticipation:
		return f.Anticipation
	default:
		return f.Gratitude
	}
}

func (f PromptFrequencies) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int{
		"gratitude":    f.Gratitude,
		"joy":          f.Joy,
		"anticipation": f.Anticipation,
	})
}

func (f *PromptFrequencies) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	f.Gratitude = m["gratitude"]
	f.Joy = m["joy"]
	f.Anticipation = m["anticipation"]
	return nil
}

// RhythmSettings holds a user's rhythm configuration.
type RhythmSettings struct {
	UserID            int64             `json:"user_id"`
	Timezone          string            `json:"timezone" validate:"omitempty,timezone"`
	ReveilleEnabled   bool              `json:"reveille_enabled"`
	ReveilleTime      string            `json:"reveille_time" validate:"omitempty,datetime=15:04"` // HH:MM
	ReckoningEnabled  bool              `json:"reckoning_enabled"`
	ReckoningTime     string            `json:"reckoning_time" validate:"omitempty,datetime=15:04"` // HH:MM
	RotationPolicy    RotationPolicy    `json:"rotation_policy" validate:"omitempty,oneof=daily weekly every_open manual"`
	PinnedContentID   *uuid.UUID        `json:"pinned_content_id"`
	PromptFrequencies PromptFrequencies `json:"prompt_frequencies"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// NewDefaultRhythmSettings creates settings with default values.
func NewDefaultRhythmSettings(userID int64) *RhythmSettings {
	return &RhythmSettings{
		UserID:            userID,
		Timezone:          "UTC",
		ReveilleEnabled:   true,
		ReveilleTime:      "06:00",
		ReckoningEnabled:  true,
		ReckoningTime:     "18:00",
		RotationPolicy:    RotateDaily,
		PromptFrequencies: DefaultPromptFrequencies(),
		UpdatedAt:         time.Now(),
	}
}

var settingsValidate = validator.New()

// Validate checks user-editable fields before they are persisted.
func (s *RhythmSettings) Validate() error {
	return settingsValidate.Struct(s)
}

// RhythmEnabled reports whether a rhythm is switched on.
func (s *RhythmSettings) RhythmEnabled(kind RhythmKind) bool {
	if kind == RhythmReckoning {
		return s.ReckoningEnabled
	}
	return s.ReveilleEnabled
}

// StartHour returns the configured start hour for a rhythm's window,
// falling back to 6 (morning) or 18 (evening) on unparsable values.
func (s *RhythmSettings) StartHour(kind RhythmKind) int {
	str := s.ReveilleTime
	fallback := 6
	if kind == RhythmReckoning {
		str = s.ReckoningTime
		fallback = 18
	}
	t, err := time.Parse("15:04", str)
	if err != nil {
		return fallback
	}
	return t.Hour()
}
