package service

import (
	"log/slog"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
)

type Instance struct {
	Queue      contract.QueueService
	Suggestion contract.SuggestionService
	Rating     contract.RatingService
	Admin      contract.AdminService
	Scheduler  *scheduler
}

// NewInstance wires the services. publisher may be nil when no event sink is
// configured.
func NewInstance(dm contract.DataManager, locker contract.QueueLocker, publisher contract.EventPublisher, logger *slog.Logger, interval time.Duration) *Instance {
	queueService := newQueue(dm, locker, publisher, logger)

	return &Instance{
		Queue:      queueService,
		Suggestion: newSuggestion(dm, queueService),
		Rating:     newRating(dm),
		Admin:      newAdmin(dm, queueService),
		Scheduler:  newScheduler(queueService, interval, logger),
	}
}
