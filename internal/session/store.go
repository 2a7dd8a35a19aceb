// Package session tracks which signed session tokens are still live.
package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// Store records live session ids. A token whose id is not live is treated
// as logged out even if its signature is still valid.
type Store interface {
	Create(ctx context.Context, id string, userID uint, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps session ids in Redis with an expiry matching the token
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Create marks id as live for ttl
func (s *RedisStore) Create(ctx context.Context, id string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKeyPrefix+id, userID, ttl).Err()
}

// Exists reports whether id is live
func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete revokes id
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

// CookieStore is used when no key-value store is configured: the signed
// cookie alone carries the session, so every validly signed id is live and
// logout only clears the browser cookie.
type CookieStore struct{}

func (CookieStore) Create(context.Context, string, uint, time.Duration) error { return nil }

func (CookieStore) Exists(context.Context, string) (bool, error) { return true, nil }

func (CookieStore) Delete(context.Context, string) error { return nil }
