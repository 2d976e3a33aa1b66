package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgredis "github.com/nataliebakery/storefront/pkg/redis"
)

// RedisCartClient is the slice of the redis client the cart adapter needs.
type RedisCartClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
	CartKey(sessionID string) string
}

// RedisStorage persists serialized carts in Redis under the fixed cart
// namespace, one key per session, refreshed with the session TTL on every
// write.
type RedisStorage struct {
	client RedisCartClient
	ttl    time.Duration
}

// NewRedisStorage builds the Redis-backed cart storage adapter.
func NewRedisStorage(client RedisCartClient, ttl time.Duration) (*RedisStorage, error) {
	if client == nil {
		return nil, errors.New("redis cart client required")
	}
	return &RedisStorage{client: client, ttl: ttl}, nil
}

func (r *RedisStorage) Load(ctx context.Context, sessionID string) (Lines, error) {
	key := r.client.CartKey(sessionID)
	raw, err := r.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var lines Lines
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	// Reads slide the session expiry alongside the cookie.
	if r.ttl > 0 {
		_ = r.client.Expire(ctx, key, r.ttl)
	}
	return lines, nil
}

func (r *RedisStorage) Save(ctx context.Context, sessionID string, lines Lines) error {
	if lines == nil {
		lines = Lines{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.client.Set(ctx, r.client.CartKey(sessionID), string(payload), r.ttl); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *RedisStorage) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.client.CartKey(sessionID)); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
