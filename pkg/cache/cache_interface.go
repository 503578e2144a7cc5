package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Allows swapping implementations (Redis, in-memory for tests).
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// Returns: (found bool, error)
	// - found = true: cache hit, data unmarshaled into dest
	// - found = false: cache miss, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection
	Ping(ctx context.Context) error
}
