package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultLockKey   = "game-club-rotation:queue-lock"
	defaultRetryWait = 200 * time.Millisecond
)

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`)

// RedisLocker is a single-writer lock shared by every process that points at
// the same Redis. The key expires after ttl so a crashed holder cannot keep
// the queue locked.
type RedisLocker struct {
	client    redis.UniversalClient
	key       string
	ttl       time.Duration
	retryWait time.Duration
	logger    *slog.Logger
}

func NewRedisLocker(client redis.UniversalClient, key string, ttl time.Duration, logger *slog.Logger) *RedisLocker {
	if key == "" {
		key = DefaultLockKey
	}

	return &RedisLocker{
		client:    client,
		key:       key,
		ttl:       ttl,
		retryWait: defaultRetryWait,
		logger:    logger,
	}
}

// NewRedisClient opens a client and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// Acquire retries SET NX until it wins or ctx is done.
func (l *RedisLocker) Acquire(ctx context.Context) (func(), error) {
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire redis lock: %w", err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(l.retryWait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return func() { l.release(token) }, nil
}

func (l *RedisLocker) release(token string) {
	// The tick context may already be cancelled; release on a fresh one.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		l.logger.Error("failed to release redis lock", "event", "queue_lock", "key", l.key, "error", err)
	}
}
