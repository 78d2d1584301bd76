package notify

import (
	"context"
	"errors"

	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
)

// Multi hands the same events to every publisher, even when one fails.
type Multi []contract.EventPublisher

func (m Multi) Publish(ctx context.Context, events []entity.QueueEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
