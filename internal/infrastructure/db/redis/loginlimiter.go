package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter counts login attempts per client in a fixed window backed by
// Redis. Key format: loginlimit:<client_ip>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter allowing maxAttempts per window.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

// Allow increments the caller's counter and reports whether this attempt is
// within the limit. The window starts on the first attempt and resets when
// the key expires.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.key(key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("loginlimit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("loginlimit expire: %w", err)
		}
	}
	return count <= l.maxAttempts, nil
}

func (l *LoginLimiter) key(client string) string {
	return fmt.Sprintf("loginlimit:%s", client)
}
