// Package cache provides the app-scoped query cache. It replaces implicit
// framework-level caching with an explicit, injectable object whose
// invalidation is expressed as key-based operations.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// GetJSON unmarshals the cached value under key into dest. The bool
	// reports whether the key was present and not expired.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Well-known cache keys, one per cached resource.
const (
	KeyIdentityUsers = "identity:users"
)
