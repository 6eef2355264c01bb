// Package cache provides pluggable caching for authoritative quote results
// and catalogue snapshots.
//
// Backends:
//   - file: directory-backed entries for CLI usage
//   - redis: shared cache for multi-instance API deployments
//   - null: caching disabled
//
// Keys for quotes are derived from a content hash of the normalized pricing
// payload, so an unchanged configuration hits the cache regardless of which
// session produced it.
package cache

import (
	"context"
	"time"
)

// TTLs per entry kind.
const (
	// TTLQuote bounds how long an authoritative price is reused. Pricing
	// inputs change on supplier updates, so quotes go stale within hours.
	TTLQuote = 1 * time.Hour

	// TTLSnapshot bounds cached catalogue snapshots for offline use.
	TTLSnapshot = 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A TTL of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// QuoteKey derives the cache key for an authoritative quote from the
// pricing payload. Payloads marshal deterministically (fixed field order),
// so equal payloads always map to the same key.
func QuoteKey(payload any) string {
	return hashKey("quote", payload)
}

// SnapshotKey derives the cache key for a catalogue snapshot.
func SnapshotKey(source string) string {
	return hashKey("catalog", source)
}
