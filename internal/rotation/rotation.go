// Package rotation picks the featured content card for a time-of-day
// slot, avoiding same-day repetition between morning and evening.
package rotation

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/models"
)

// Select chooses a content card for the given slot and day, recording
// the choice on status so repeated calls within the same day are
// idempotent. It returns the chosen card's id and whether status was
// mutated (callers persist the status when true). An empty pool yields
// uuid.Nil and no mutation.
//
// Selection priority:
//  1. a selection already stored for today wins, unless the policy is
//     every_open
//  2. manual returns the pinned card when it is still in the pool,
//     else the pool's first card
//  3. the evening slot excludes the card already chosen for morning,
//     unless the pool has only one card
//  4. every_open picks uniformly at random on each call
//  5. weekly/daily pick a deterministic index from the day ordinal, so
//     the selection is stable for the whole period and rotates on the
//     next one
func Select(
	pool []models.ContentCard,
	slot models.DaySlot,
	status *models.DailyRhythmStatus,
	policy models.RotationPolicy,
	pinned *uuid.UUID,
	today calendar.Date,
) (uuid.UUID, bool) {
	if len(pool) == 0 {
		return uuid.Nil, false
	}

	if stored := status.ContentFor(slot); stored != nil && policy != models.RotateEveryOpen {
		return *stored, false
	}

	if policy == models.RotateManual {
		chosen := pool[0].ContentID
		if pinned != nil && contains(pool, *pinned) {
			chosen = *pinned
		}
		status.SetContentFor(slot, chosen)
		return chosen, true
	}

	candidates := pool
	if slot == models.SlotEvening && len(pool) > 1 {
		if morning := status.ContentFor(models.SlotMorning); morning != nil {
			candidates = exclude(pool, *morning)
			if len(candidates) == 0 {
				candidates = pool
			}
		}
	}

	var chosen uuid.UUID
	switch policy {
	case models.RotateEveryOpen:
		chosen = candidates[rand.Intn(len(candidates))].ContentID
	case models.RotateWeekly:
		chosen = candidates[periodIndex(today.Ordinal()/7, slot, len(candidates))].ContentID
	default: // daily, and any unrecognized policy
		chosen = candidates[periodIndex(today.Ordinal(), slot, len(candidates))].ContentID
	}

	status.SetContentFor(slot, chosen)
	return chosen, true
}

// periodIndex derives a stable index from a period counter. The
// evening slot is offset by one so the two slots diverge even when the
// morning pick was not excluded from the candidate set.
func periodIndex(period int, slot models.DaySlot, size int) int {
	if slot == models.SlotEvening {
		period++
	}
	return period % size
}

func contains(pool []models.ContentCard, id uuid.UUID) bool {
	for _, c := range pool {
		if c.ContentID == id {
			return true
		}
	}
	return false
}

func exclude(pool []models.ContentCard, id uuid.UUID) []models.ContentCard {
	out := make([]models.ContentCard, 0, len(pool))
	for _, c := range pool {
		if c.ContentID != id {
			out = append(out, c)
		}
	}
	return out
}
