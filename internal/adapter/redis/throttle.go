package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const failedLoginPrefix = "login:failed:"

// LoginThrottle counts failed logins per username in Redis.
// The counter expires lockoutWindow after the first failure.
type LoginThrottle struct {
	client        goredis.Cmdable
	maxFailures   int
	lockoutWindow time.Duration
}

func NewLoginThrottle(client goredis.Cmdable, maxFailures int, lockoutWindow time.Duration) *LoginThrottle {
	return &LoginThrottle{
		client:        client,
		maxFailures:   maxFailures,
		lockoutWindow: lockoutWindow,
	}
}

func key(username string) string {
	return failedLoginPrefix + username
}

// Allowed reports whether username may try to log in.
// A non-positive limit disables throttling.
func (t *LoginThrottle) Allowed(ctx context.Context, username string) (bool, error) {
	if t.maxFailures <= 0 {
		return true, nil
	}

	n, err := t.client.Get(ctx, key(username)).Int()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return true, nil
		}
		return true, fmt.Errorf("redis get: %w", err)
	}
	return n < t.maxFailures, nil
}

func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	k := key(username)

	n, err := t.client.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, k, t.lockoutWindow).Err(); err != nil {
			return fmt.Errorf("redis expire: %w", err)
		}
	}
	return nil
}

func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	if err := t.client.Del(ctx, key(username)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
