package workbook

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/melib/pkg/cache"
	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
	"github.com/matzehuels/melib/pkg/grid/csvgrid"
	"github.com/matzehuels/melib/pkg/grid/xlsx"
	gridio "github.com/matzehuels/melib/pkg/io"
	"github.com/matzehuels/melib/pkg/observability"
)

// Loader reads workbooks through a cache.
//
// The Loader holds no per-load state; the returned grids are independent
// copies and may be modified by the caller.
type Loader struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL applies to loads whose Options leave TTL zero. Zero means
	// DefaultTTL.
	TTL time.Duration
}

// NewLoader creates a loader. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger discards output.
func NewLoader(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Loader {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Loader{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load reads, parses and caches the workbook named by opts.Path.
func (l *Loader) Load(ctx context.Context, opts Options) (res *Result, err error) {
	start := time.Now()
	hooks := observability.Load()
	hooks.OnLoadStart(ctx, opts.Path, opts.Sheet)
	defer func() {
		rows, hit := 0, false
		if res != nil {
			rows, hit = res.Stats.Rows, res.CacheHit
		}
		hooks.OnLoadComplete(ctx, opts.Path, opts.Sheet, rows, hit, time.Since(start), err)
	}()

	if opts.TTL == 0 {
		opts.TTL = l.TTL
	}
	format, err := opts.ValidateAndSetDefaults()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = l.Logger
	}

	// Stage 1: Read
	data, err := os.ReadFile(opts.Path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "workbook %s does not exist", opts.Path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read workbook %s", opts.Path)
	}
	res = &Result{Format: format, ContentHash: cache.Hash(data)}
	key := l.Keyer.GridKey(res.ContentHash, opts.Sheet)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if g, ok := l.cached(ctx, key, logger); ok {
			res.Grid, res.CacheHit = g, true
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Parse
	if res.Grid == nil {
		g, err := parse(format, data, opts.Sheet)
		if err != nil {
			return nil, err
		}
		res.Grid = g
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Stage 3: Store
		l.store(ctx, key, g, opts.TTL, logger)
	}

	res.Stats = Stats{
		LoadTime: time.Since(start),
		Rows:     res.Grid.MaxRow(),
		Cols:     res.Grid.MaxCol(),
	}
	logger.Info("loaded workbook",
		"path", opts.Path,
		"rows", res.Stats.Rows,
		"cols", res.Stats.Cols,
		"cached", res.CacheHit,
		"duration", res.Stats.LoadTime)
	return res, nil
}

// Grid is a convenience wrapper around Load that returns only the grid.
func (l *Loader) Grid(ctx context.Context, path, sheet string) (*grid.Memory, error) {
	res, err := l.Load(ctx, Options{Path: path, Sheet: sheet})
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// Close releases resources held by the loader (primarily the cache).
func (l *Loader) Close() error {
	if l.Cache != nil {
		return l.Cache.Close()
	}
	return nil
}

func (l *Loader) cached(ctx context.Context, key string, logger *log.Logger) (*grid.Memory, bool) {
	hooks := observability.Cache()
	data, hit, err := l.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, "grid")
		return nil, false
	}
	g, err := gridio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		// A stale or foreign entry; fall through to reparse.
		logger.Debug("discarding unreadable cache entry", "key", key, "err", err)
		hooks.OnCacheMiss(ctx, "grid")
		return nil, false
	}
	hooks.OnCacheHit(ctx, "grid")
	logger.Debug("cache hit", "key", key)
	return g, true
}

func (l *Loader) store(ctx context.Context, key string, g grid.Grid, ttl time.Duration, logger *log.Logger) {
	var buf bytes.Buffer
	if err := gridio.WriteJSON(g, &buf); err != nil {
		logger.Warn("encode grid for cache", "err", err)
		return
	}
	if err := l.Cache.Set(ctx, key, buf.Bytes(), ttl); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "grid", buf.Len())
}

func parse(format Format, data []byte, sheet string) (*grid.Memory, error) {
	r := bytes.NewReader(data)
	switch format {
	case FormatXLSX:
		return xlsx.Read(r, sheet)
	case FormatCSV:
		return csvgrid.Read(r)
	case FormatJSON:
		return gridio.ReadJSON(r)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported workbook format %q", format)
}
