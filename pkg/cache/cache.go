// Package cache provides a small byte cache used by the CLI to reuse
// rendered graph artifacts (SVG/PNG output) across runs.
//
// Keys are derived from the rendered DOT text, so any change to the graph or
// the format verb produces a different key and a cache miss. [FileCache]
// persists entries under the user cache directory; [NullCache] disables
// caching without changing call sites.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional
// expiration. Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was found
	// and unexpired; errors are reserved for storage failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey derives the cache key for a rendered artifact from the hash of
// its DOT source and the output format.
func ArtifactKey(dotHash, format string) string {
	return "artifact:" + format + ":" + dotHash
}
