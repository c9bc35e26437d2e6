package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer so the
// implementation can be swapped (Redis, in-memory).
type Cache interface {
	// Get reads data from cache and unmarshals into dest.
	// Returns found=false on a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores data in cache with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from cache
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}
