package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockoutKeyPrefix = "lockout:"

// LockoutCache mirrors account lockouts into Redis so a suspension takes
// effect on live sessions immediately, without waiting for a DB read.
// All methods degrade to no-ops when no client is configured.
type LockoutCache struct {
	client *redis.Client
}

// NewLockoutCache builds the cache over an optional redis client.
func NewLockoutCache(client *redis.Client) *LockoutCache {
	return &LockoutCache{client: client}
}

// Bar marks the account locked out. A nil until means indefinitely: the key
// carries no expiry and stays until Clear is called.
func (c *LockoutCache) Bar(ctx context.Context, userID string, until *time.Time) error {
	if c == nil || c.client == nil {
		return nil
	}
	var ttl time.Duration
	if until != nil {
		ttl = time.Until(*until)
		if ttl <= 0 {
			return c.Clear(ctx, userID)
		}
	}
	return c.client.Set(ctx, lockoutKeyPrefix+userID, "1", ttl).Err()
}

// Clear lifts the cached lockout.
func (c *LockoutCache) Clear(ctx context.Context, userID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, lockoutKeyPrefix+userID).Err()
}

// Barred reports whether the account has a cached lockout. Cache misses and
// cache failures both return false; the database remains authoritative.
func (c *LockoutCache) Barred(ctx context.Context, userID string) bool {
	if c == nil || c.client == nil {
		return false
	}
	n, err := c.client.Exists(ctx, lockoutKeyPrefix+userID).Result()
	if err != nil {
		return false
	}
	return n > 0
}
