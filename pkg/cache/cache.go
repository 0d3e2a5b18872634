// Package cache stores parsed artifacts so repeated loads of the same
// workbook skip the spreadsheet parser.
//
// # Backends
//
// [Cache] is a byte-oriented key/value store with optional expiry.
// [FileCache] keeps entries as JSON files under a directory; [NullCache]
// stores nothing and turns caching off.
//
// # Keys
//
// A [Keyer] derives keys from content rather than paths: a workbook that is
// edited gets a new key, and a workbook copied to another directory keeps
// its key.
//
//	k := cache.NewDefaultKeyer()
//	key := k.GridKey(cache.Hash(data), "Sheet1")
//
// [ScopedKeyer] prefixes every key, which separates caches for different
// course years or users sharing one cache directory.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store for serialized artifacts.
//
// Get reports a miss with hit == false and a nil error. A ttl of zero or
// less means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// GridKey identifies a parsed worksheet by the hash of the source file
	// content and the sheet name.
	GridKey(contentHash, sheet string) string
}

// KeyVersion is mixed into every key. Bump it when the serialized form of a
// cached artifact changes so stale entries are ignored.
const KeyVersion = 1

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GridKey returns "grid:<sha256>" over the version, content hash and sheet.
func (DefaultKeyer) GridKey(contentHash, sheet string) string {
	return hashKey("grid", KeyVersion, contentHash, sheet)
}
