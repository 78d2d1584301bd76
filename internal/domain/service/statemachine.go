package service

import (
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
)

// Status moves forward only: Pending -> Queued -> Active -> Finished.
// Pending -> Queued is performed by the rebuild step alone. The guards below
// cover the time based transitions. ForceTransition bypasses all of them.

// canActivate reports whether a queued suggestion may become active: its
// window has opened and no other suggestion holds the active slot.
func canActivate(s, active *entity.Suggestion, now time.Time) bool {
	if s.Status != entity.StatusQueued || s.ActiveAt == nil {
		return false
	}
	if active != nil && active.ID != s.ID {
		return false
	}
	return !now.Before(*s.ActiveAt)
}

// canFinish reports whether an active suggestion's window has closed.
func canFinish(s *entity.Suggestion, now time.Time) bool {
	if s.Status != entity.StatusActive || s.FinishedAt == nil {
		return false
	}
	return !now.Before(*s.FinishedAt)
}

// eventFor names the queue event emitted when a suggestion moves from one
// status to another. Moves that keep the status emit nothing.
func eventFor(from, to entity.SuggestionStatus) string {
	if from == to {
		return ""
	}

	switch to {
	case entity.StatusQueued:
		return domain.EventSuggestionQueued
	case entity.StatusActive:
		return domain.EventSuggestionActivated
	case entity.StatusFinished:
		return domain.EventSuggestionFinished
	default:
		return ""
	}
}

// validateForcedState checks the fields an administrator may set directly.
// Forward-only ordering is intentionally not enforced.
func validateForcedState(input entity.ForceStateInput) error {
	if !input.Status.Valid() {
		return domain.InvalidArgument("unknown status %d", int(input.Status))
	}
	if input.ActiveAt != nil && input.FinishedAt != nil && input.FinishedAt.Before(*input.ActiveAt) {
		return domain.InvalidArgument("active date must not be after finished date")
	}
	if input.CycleNumber != nil && *input.CycleNumber < 0 {
		return domain.InvalidArgument("cycle number must not be negative")
	}
	return nil
}
