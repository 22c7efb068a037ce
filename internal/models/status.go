package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/daybreak-app/daybreak/internal/calendar"
)

// DailyRhythmStatus is the one-row-per-user-per-local-date record the
// rhythm engine reads and writes through. Rows are created lazily on
// first access each day and never deleted; the datastore enforces a
// uniqueness constraint on (user_id, date).
type DailyRhythmStatus struct {
	ID                 uuid.UUID     `json:"id"`
	UserID             int64         `json:"user_id"`
	Date               calendar.Date `json:"date"`
	ReveilleDismissed  bool          `json:"reveille_dismissed"`
	ReckoningDismissed bool          `json:"reckoning_dismissed"`
	GratitudeDone      bool          `json:"gratitude_done"`
	JoyDone            bool          `json:"joy_done"`
	AnticipationDone   bool          `json:"anticipation_done"`
	ContentMorningID   *uuid.UUID    `json:"content_morning_id"`
	ContentEveningID   *uuid.UUID    `json:"content_evening_id"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (s *DailyRhythmStatus) Dismissed(kind RhythmKind) bool {
	if kind == RhythmReckoning {
		return s.ReckoningDismissed
	}
	return s.ReveilleDismissed
}

func (s *DailyRhythmStatus) SetDismissed(kind RhythmKind) {
	if kind == RhythmReckoning {
		s.ReckoningDismissed = true
		return
	}
	s.ReveilleDismissed = true
}

func (s *DailyRhythmStatus) PromptDone(kind PromptKind) bool {
	switch kind {
	case PromptJoy:
		return s.JoyDone
	case PromptAnticipation:
		return s.AnticipationDone
	default:
		return s.GratitudeDone
	}
}

func (s *DailyRhythmStatus) SetPromptDone(kind PromptKind) {
	switch kind {
	case PromptJoy:
		s.JoyDone = true
	case PromptAnticipation:
		s.AnticipationDone = true
	default:
		s.GratitudeDone = true
	}
}

// ContentFor returns the stored rotation selection for a slot, or nil
// when none has been chosen today.
func (s *DailyRhythmStatus) ContentFor(slot DaySlot) *uuid.UUID {
	if slot == SlotEvening {
		return s.ContentEveningID
	}
	return s.ContentMorningID
}

func (s *DailyRhythmStatus) SetContentFor(slot DaySlot, id uuid.UUID) {
	if slot == SlotEvening {
		s.ContentEveningID = &id
		return
	}
	s.ContentMorningID = &id
}
