package lock

import (
	"context"

	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
)

// Chain holds every locker in order and releases them in reverse.
type Chain []contract.QueueLocker

func (c Chain) Acquire(ctx context.Context) (func(), error) {
	releases := make([]func(), 0, len(c))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	for _, locker := range c {
		release, err := locker.Acquire(ctx)
		if err != nil {
			releaseAll()
			return nil, err
		}
		releases = append(releases, release)
	}

	return releaseAll, nil
}
