package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter implements Limiter with a fixed window per key (INCR + EXPIRE).
// Coarser than the in-memory sliding window but shared across nodes.
type RedisLimiter struct {
	client redis.Cmdable
}

func NewRedis(client redis.Cmdable) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	redisKey := "ratelimit:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("ratelimit incr: %w", err)
	}
	if count == 1 {
		// First event in the window owns the expiry.
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return nil, fmt.Errorf("ratelimit expire: %w", err)
		}
	}

	if count > int64(limit) {
		ttl, err := l.client.TTL(ctx, redisKey).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}
		return &Result{Allowed: false, Remaining: 0, RetryAfter: ttl}, nil
	}

	return &Result{Allowed: true, Remaining: limit - int(count)}, nil
}
