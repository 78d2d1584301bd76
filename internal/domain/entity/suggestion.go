package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SuggestionStatus int

const (
	StatusPending SuggestionStatus = iota
	StatusQueued
	StatusActive
	StatusFinished
)

var statusNames = map[SuggestionStatus]string{
	StatusPending:  "pending",
	StatusQueued:   "queued",
	StatusActive:   "active",
	StatusFinished: "finished",
}

func (s SuggestionStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s SuggestionStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus accepts the lower-case status names.
func ParseStatus(value string) (SuggestionStatus, error) {
	for status, name := range statusNames {
		if name == value {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown suggestion status %q", value)
}

type Suggestion struct {
	ID           uuid.UUID
	Title        string
	Order        int
	IsHidden     bool
	SubmitterID  uuid.UUID
	CreatedAt    time.Time
	ExternalLink *string
	// ActiveAt and FinishedAt form the half-open window [ActiveAt, FinishedAt).
	ActiveAt    *time.Time
	FinishedAt  *time.Time
	CycleNumber *int
	Status      SuggestionStatus
}

// WindowContains reports whether t falls inside [ActiveAt, FinishedAt).
func (s *Suggestion) WindowContains(t time.Time) bool {
	if s.ActiveAt == nil || s.FinishedAt == nil {
		return false
	}
	return !t.Before(*s.ActiveAt) && t.Before(*s.FinishedAt)
}

// SameWindow reports whether s already carries the given status and window.
func (s *Suggestion) SameWindow(status SuggestionStatus, activeAt, finishedAt time.Time) bool {
	return s.Status == status &&
		s.ActiveAt != nil && s.ActiveAt.Equal(activeAt) &&
		s.FinishedAt != nil && s.FinishedAt.Equal(finishedAt)
}

// SuggestionSummary is a suggestion as listed to members, with its
// submitter and rating aggregates resolved.
type SuggestionSummary struct {
	Suggestion
	SubmitterName string
	AverageRating *float64
	RatingsCount  int
}

// SuggestionDetail adds the labelled ratings of a suggestion.
type SuggestionDetail struct {
	SuggestionSummary
	Ratings []RatingView
}

// HomePage groups suggestions by their place in the rotation.
type HomePage struct {
	Active   *SuggestionSummary
	Queued   []SuggestionSummary
	Finished []SuggestionSummary
}
