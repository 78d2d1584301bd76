package entity

import (
	"time"

	"github.com/google/uuid"
)

type CreateSuggestionInput struct {
	Title        string
	IsHidden     bool
	ExternalLink *string
}

type UpdateSuggestionInput struct {
	Title        string
	IsHidden     bool
	ExternalLink *string
}

// ForceStateInput is an administrator override of the scheduling fields.
type ForceStateInput struct {
	Status      SuggestionStatus
	ActiveAt    *time.Time
	FinishedAt  *time.Time
	CycleNumber *int
}

type AddMemberInput struct {
	Name             string
	RotationPosition int
}

type RatingInput struct {
	SuggestionID uuid.UUID
	Score        int
	Comment      *string
}
