// Package redislock implements ports.LoadLocker on top of a Redis RedLock
// mutex, so several service instances serialize work on the same load.
package redislock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"loadboard/internal/core/domain/model/kernel"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "loadboard:load:"

// Options tune the RedLock mutex taken for every load.
type Options struct {
	// Expiry bounds how long a crashed holder keeps the load locked.
	Expiry time.Duration
	// Tries is the number of acquisition attempts before giving up.
	Tries      int
	RetryDelay time.Duration
}

func DefaultOptions() Options {
	return Options{
		Expiry:     10 * time.Second,
		Tries:      64,
		RetryDelay: 50 * time.Millisecond,
	}
}

// LoadLocker takes one Redis mutex per load id.
type LoadLocker struct {
	redsync *redsync.Redsync
	opts    Options
	logger  *slog.Logger
}

func NewLoadLocker(client redis.UniversalClient, opts Options, logger *slog.Logger) *LoadLocker {
	defaults := DefaultOptions()
	if opts.Expiry <= 0 {
		opts.Expiry = defaults.Expiry
	}
	if opts.Tries <= 0 {
		opts.Tries = defaults.Tries
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaults.RetryDelay
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LoadLocker{
		redsync: redsync.New(goredis.NewPool(client)),
		opts:    opts,
		logger:  logger.With("component", "RedisLoadLocker"),
	}
}

// Key returns the Redis key guarding loadID.
func Key(loadID kernel.UUID) string {
	return keyPrefix + loadID.String()
}

func (l *LoadLocker) WithLoadLock(ctx context.Context, loadID kernel.UUID, fn func(ctx context.Context) error) error {
	key := Key(loadID)
	mutex := l.redsync.NewMutex(
		key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	defer func() {
		// The caller's context may already be cancelled; the lock must still go.
		if ok, err := mutex.UnlockContext(context.WithoutCancel(ctx)); !ok || err != nil {
			l.logger.WarnContext(ctx, "Failed to release load lock", "key", key, "ok", ok, "error", err)
		}
	}()

	return fn(ctx)
}
