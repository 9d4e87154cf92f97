// Package redisblacklist stores revoked refresh token IDs in Redis.
//
// Each revoked jti becomes a key with a TTL equal to the remaining lifetime
// of the token, so entries expire on their own once the token would be
// rejected as expired anyway.
package redisblacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "auth:blacklist:"

// Blacklist implements repository.TokenBlacklist backed by Redis.
type Blacklist struct {
	client *redis.Client
}

// New creates a Redis-backed token blacklist.
func New(client *redis.Client) *Blacklist {
	return &Blacklist{client: client}
}

// Add marks a token ID as revoked until ttl elapses. A non-positive ttl means
// the token is already expired and nothing needs to be stored.
func (b *Blacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := b.client.Set(ctx, keyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}

	return nil
}

// IsBlacklisted reports whether the token ID has been revoked.
func (b *Blacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}

	return n > 0, nil
}
