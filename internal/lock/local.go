package lock

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// LocalLocker serializes queue ticks inside one process.
type LocalLocker struct {
	sem *semaphore.Weighted
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{sem: semaphore.NewWeighted(1)}
}

// Acquire blocks until the lock is free or ctx is done.
func (l *LocalLocker) Acquire(ctx context.Context) (func(), error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { l.sem.Release(1) }, nil
}
