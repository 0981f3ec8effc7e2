package redis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"bank-ledger/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// pendingMarker occupies a reserved key until the response is stored.
var pendingMarker = []byte("\x00pending")

// IdempotencyCache keeps replayable write responses in Redis. A key is
// reserved with SETNX before the request runs, so concurrent duplicates
// see ports.ErrRequestInFlight instead of running twice.
type IdempotencyCache struct {
	client goredis.Cmdable
}

// NewIdempotencyCache wraps client.
func NewIdempotencyCache(client goredis.Cmdable) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

func idempotencyKey(key string) string {
	return keyPrefix + "idempotency:" + key
}

// Get returns the cached response, nil when nothing is stored under key,
// or ports.ErrRequestInFlight while the key is only reserved.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := c.client.Get(ctx, idempotencyKey(key)).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	case bytes.Equal(body, pendingMarker):
		return nil, ports.ErrRequestInFlight
	}
	return body, nil
}

// Reserve claims key for ttl. It reports false when the key is already
// reserved or holds a response.
func (c *IdempotencyCache) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, idempotencyKey(key), pendingMarker, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis idempotency reserve: %w", err)
	}
	return ok, nil
}

// Set stores the response under key for ttl, replacing the reservation.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, idempotencyKey(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}

// Release drops a reservation so the key can be retried.
func (c *IdempotencyCache) Release(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, idempotencyKey(key)).Err(); err != nil {
		return fmt.Errorf("redis idempotency release: %w", err)
	}
	return nil
}
