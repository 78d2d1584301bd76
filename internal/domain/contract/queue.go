package contract

//go:generate go run go.uber.org/mock/mockgen -source=queue.go -destination=../../../mocks/queue.go -package=mocks

import (
	"context"

	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
)

// QueueLocker serializes queue ticks.
type QueueLocker interface {
	// Acquire blocks until the lock is held or ctx is done.
	Acquire(ctx context.Context) (release func(), err error)
}

// EventPublisher receives the status changes of a committed tick.
// Publishing is best-effort: errors are logged by the caller and never
// undo the tick.
type EventPublisher interface {
	Publish(ctx context.Context, events []entity.QueueEvent) error
}
