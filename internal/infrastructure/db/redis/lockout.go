package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockoutWindow = 15 * time.Minute
	maxFailures   = 5
)

// LoginLockout counts failed login attempts per account in Redis.
// Key format: login:attempts:<email>
//
// The counter expires after lockoutWindow, so a locked account unlocks
// itself without operator intervention.
type LoginLockout struct {
	client *redis.Client
}

// NewLoginLockout creates a LoginLockout wrapping the given Redis client.
func NewLoginLockout(client *redis.Client) *LoginLockout {
	return &LoginLockout{client: client}
}

// TooManyAttempts reports whether the account has exhausted its failures.
func (l *LoginLockout) TooManyAttempts(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(key)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lockout check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (l *LoginLockout) RecordFailure(ctx context.Context, key string) error {
	k := l.key(key)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, lockoutWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLockout) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key)).Err()
}

func (l *LoginLockout) key(account string) string {
	return "login:attempts:" + account
}
