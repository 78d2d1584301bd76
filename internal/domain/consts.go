package domain

import "time"

// PlayPeriod is the length of every scheduled window.
const PlayPeriod = 14 * 24 * time.Hour

// DefaultQueueInterval is how often the periodic trigger runs a tick.
const DefaultQueueInterval = time.Hour

// Reorder directions accepted by the suggestion service.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Queue event types published after a tick commits.
const (
	EventSuggestionQueued    = "suggestion.queued"
	EventSuggestionActivated = "suggestion.activated"
	EventSuggestionFinished  = "suggestion.finished"
)

// MaxCommentLength mirrors the column size used by both stores.
const MaxCommentLength = 1000

// MaxTitleLength mirrors the column size used by both stores.
const MaxTitleLength = 255

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
