package common

import "time"

// CacheInterface is the contract both cache backends satisfy. The app
// keeps two hot aggregates behind it: the category slug map and the
// jet-range bounds, both invalidated by Delete on writes.
type CacheInterface interface {
	// Set stores a value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the value and true when present. Redis round-trips
	// hand structs back as map[string]any; callers re-shape them.
	Get(key string) (interface{}, bool)

	// Delete drops one key, the write-path invalidation hook.
	Delete(key string)

	// GetOrSet returns the cached value or runs loader and caches its
	// result.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases the backing connection (no-op in-memory).
	Close() error
}
