package entity

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	ID           uuid.UUID
	SuggestionID uuid.UUID
	RaterID      uuid.UUID
	Score        int
	Comment      *string
	CreatedAt    time.Time
}

// RatingView is a rating with its rater and label resolved.
type RatingView struct {
	Rating
	RaterName       string
	Label           string
	SuggestionTitle string
	FinishedAt      *time.Time
}

// RatingStats aggregates the scores of one suggestion.
type RatingStats struct {
	SuggestionID uuid.UUID
	Sum          int
	Count        int
}
