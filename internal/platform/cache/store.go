package cache

import (
	"context"
	"time"
)

// Store is a TTL key/value cache holding serialized JSON documents.
//
// Implementations never return backend failures to callers: a failed Get
// is a miss, a failed Set or Delete reports false, a failed
// DeleteByPattern reports zero. Failures are logged at the store boundary.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool
	Delete(ctx context.Context, key string) bool
	DeleteByPattern(ctx context.Context, pattern string) int
	Ping(ctx context.Context) error
	Close() error
}

// Driver names accepted by CACHE_DRIVER.
const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)
