// Package observability provides hooks for metrics and tracing of workbook
// loading.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Applications register
// hooks at startup to receive events about workbook loads and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Only the workbook loader emits events. Table lookups and interpolation
// never touch this package, so they stay free of shared state.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLoadHooks(&myLoadHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// The loader calls hooks to emit events:
//
//	observability.Load().OnLoadStart(ctx, path, sheet)
//	// ... parse ...
//	observability.Load().OnLoadComplete(ctx, path, sheet, rows, cached, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Load Hooks
// =============================================================================

// LoadHooks receives events from the workbook loader.
type LoadHooks interface {
	// OnLoadStart records the start of a load.
	OnLoadStart(ctx context.Context, path, sheet string)

	// OnLoadComplete records the end of a load. cached reports whether the
	// grid came from the cache; rows is the grid height on success.
	OnLoadComplete(ctx context.Context, path, sheet string, rows int, cached bool, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLoadHooks is a no-op implementation of LoadHooks.
type NoopLoadHooks struct{}

func (NoopLoadHooks) OnLoadStart(context.Context, string, string) {}
func (NoopLoadHooks) OnLoadComplete(context.Context, string, string, int, bool, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	loadHooks  LoadHooks  = NoopLoadHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetLoadHooks registers custom load hooks.
// This should be called once at application startup before any loads.
func SetLoadHooks(h LoadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loadHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Load returns the registered load hooks.
func Load() LoadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loadHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	loadHooks = NoopLoadHooks{}
	cacheHooks = NoopCacheHooks{}
}
