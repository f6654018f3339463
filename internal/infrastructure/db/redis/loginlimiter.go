package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 10
	defaultWindow      = 15 * time.Minute
)

// LoginLimiter throttles failed login attempts per email, backed by
// Redis so the window is shared across server instances.
// Key format: login_failures:<email>
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive limits fall back to the defaults.
func NewLoginLimiter(client *redis.Client, maxFailures int64, window time.Duration) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxFailures: maxFailures, window: window}
}

// Allow reports whether another attempt for email is permitted.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n < l.maxFailures, nil
}

// RecordFailure counts a failed attempt. The window starts at the
// first failure and is not extended by later ones.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return nil
}

func (l *LoginLimiter) key(email string) string {
	return "login_failures:" + strings.ToLower(email)
}
