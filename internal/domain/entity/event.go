package entity

import (
	"time"

	"github.com/google/uuid"
)

// QueueEvent describes one status change committed by a queue tick.
type QueueEvent struct {
	Type          string           `json:"type"`
	SuggestionID  uuid.UUID        `json:"suggestion_id"`
	Title         string           `json:"title"`
	SubmitterID   uuid.UUID        `json:"submitter_id"`
	SubmitterName string           `json:"submitter_name"`
	Status        SuggestionStatus `json:"-"`
	StatusName    string           `json:"status"`
	ActiveAt      *time.Time       `json:"active_at,omitempty"`
	FinishedAt    *time.Time       `json:"finished_at,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}
