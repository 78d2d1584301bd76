package lock

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedis connects to REDIS_TEST_ADDR and returns a key unique to the test.
func setupRedis(t *testing.T) (*redis.Client, string) {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client, err := NewRedisClient(context.Background(), addr, os.Getenv("REDIS_TEST_PASSWORD"), 0)
	require.NoError(t, err)

	key := "game-club-rotation:test:" + uuid.NewString()
	t.Cleanup(func() {
		_ = client.Del(context.Background(), key).Err()
		_ = client.Close()
	})

	return client, key
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedisLocker_SingleHolder(t *testing.T) {
	client, key := setupRedis(t)
	ctx := context.Background()

	first := NewRedisLocker(client, key, 10*time.Second, discardLogger())
	second := NewRedisLocker(client, key, 10*time.Second, discardLogger())
	second.retryWait = 10 * time.Millisecond

	release, err := first.Acquire(ctx)
	require.NoError(t, err)

	ttl, err := client.PTTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = second.Acquire(waitCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()

	exists, err := client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), exists)

	releaseSecond, err := second.Acquire(ctx)
	require.NoError(t, err)
	releaseSecond()
}

func TestRedisLocker_WaitsForRelease(t *testing.T) {
	client, key := setupRedis(t)
	ctx := context.Background()

	first := NewRedisLocker(client, key, 10*time.Second, discardLogger())
	second := NewRedisLocker(client, key, 10*time.Second, discardLogger())
	second.retryWait = 10 * time.Millisecond

	release, err := first.Acquire(ctx)
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		releaseSecond, err := second.Acquire(waitCtx)
		if !assert.NoError(t, err) {
			return
		}
		releaseSecond()
		close(acquired)
	}()

	time.Sleep(50 * time.Millisecond)
	release()

	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		t.Fatal("second holder never acquired the lock")
	}
}

func TestRedisLocker_ReleaseKeepsOtherHoldersKey(t *testing.T) {
	client, key := setupRedis(t)
	ctx := context.Background()

	locker := NewRedisLocker(client, key, 10*time.Second, discardLogger())

	release, err := locker.Acquire(ctx)
	require.NoError(t, err)

	// Our key expired and another process took the lock.
	require.NoError(t, client.Set(ctx, key, "other-holder", 10*time.Second).Err())

	release()

	value, err := client.Get(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, "other-holder", value)
}

func TestRedisLocker_ExpiresAbandonedLock(t *testing.T) {
	client, key := setupRedis(t)
	ctx := context.Background()

	crashed := NewRedisLocker(client, key, 200*time.Millisecond, discardLogger())
	_, err := crashed.Acquire(ctx)
	require.NoError(t, err)

	next := NewRedisLocker(client, key, 10*time.Second, discardLogger())
	next.retryWait = 20 * time.Millisecond

	waitCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	release, err := next.Acquire(waitCtx)
	require.NoError(t, err)
	release()
}
