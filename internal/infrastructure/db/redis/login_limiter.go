package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxFailures   = 5
	failureWindow = 15 * time.Minute
)

// LoginLimiter throttles repeated failed sign-in attempts per email, backed
// by a Redis counter with a sliding expiry.
// Key format: login_failures:<email>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// TooManyFailures reports whether the email has exhausted its failure budget
// within the current window.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure counts one failed attempt and refreshes the window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	if err := l.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("limiter incr: %w", err)
	}
	return l.client.Expire(ctx, key, failureWindow).Err()
}

// Clear resets the failure count after a successful sign-in.
func (l *LoginLimiter) Clear(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_failures:" + email
}
