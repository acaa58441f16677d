package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisLimiter — фиксированное окно поверх Redis (INCR + EXPIRE NX).
// Корректен при горизонтальном масштабировании: счётчик общий для всех инстансов.
type redisLimiter struct {
	rdb    *redis.Client
	prefix string
	max    int
	window time.Duration
}

// NewRedis создаёт лимитер поверх Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "pokedex:rl:".
func NewRedis(redisURL, prefix string, max int, window time.Duration) (Limiter, error) {
	if prefix == "" {
		prefix = "pokedex:rl:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisLimiter{rdb: rdb, prefix: prefix, max: max, window: window}, nil
}

func (l *redisLimiter) key(bucket, identity string) string {
	return l.prefix + bucket + ":" + identity
}

func (l *redisLimiter) Consume(ctx context.Context, bucket, identity string) (Result, error) {
	key := l.key(bucket, identity)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// NX: TTL выставляется только первым запросом окна.
	pipe.ExpireNX(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("ratelimit.redis: %w", err)
	}

	count := int(incr.Val())
	if count > l.max {
		ttl, err := l.rdb.TTL(ctx, key).Result()
		if err != nil || ttl <= 0 {
			ttl = l.window
		}
		return Result{Allowed: false, RetryAfter: ttl}, nil
	}

	return Result{Allowed: true, Remaining: l.max - count}, nil
}

func (l *redisLimiter) Close() error { return l.rdb.Close() }
