package locking

import (
	"context"
	"errors"
	"time"

	"gestion_oficina/internal/infrastructure/logging"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	redisLockPrefix   = "gestion_oficina:lock:"
	redisRetryBackoff = 50 * time.Millisecond
	releaseTimeout    = 5 * time.Second
)

// RedisLocker serializes ledger units and reminder ticks across instances.
type RedisLocker struct {
	client *redislock.Client
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(rdb *redis.Client) *RedisLocker {
	return &RedisLocker{client: redislock.New(rdb)}
}

func (l *RedisLocker) Obtain(ctx context.Context, key string, ttl, wait time.Duration) (func(), error) {
	opts := &redislock.Options{}
	if wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wait)
		defer cancel()
		opts.RetryStrategy = redislock.LinearBackoff(redisRetryBackoff)
	}

	lock, err := l.client.Obtain(ctx, redisLockPrefix+key, ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
		return nil, interfaces.ErrLockNotObtained
	}
	if err != nil {
		logging.LogError(logging.GetLogger(), "locking", "RedisLocker.Obtain", "obtain lock", key, err)
		return nil, err
	}

	return func() {
		relCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := lock.Release(relCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			logging.LogError(logging.GetLogger(), "locking", "RedisLocker.Release", "release lock", key, err)
		}
	}, nil
}
