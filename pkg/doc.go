// Package pkg provides the core libraries for melib, a toolkit of table
// lookups and chart interpolation for machine element design.
//
// # Overview
//
// Design data (bolt grades, material properties, gear factors) lives in
// spreadsheet "tables": a marker row carrying a numeric tag, a header row of
// column names, and data rows keyed by a label. Charts that engineers read
// off a plot (AGMA factors, stress concentration surfaces) are stored as
// digitized breakpoint series. The pkg directory is organized into:
//
//  1. [grid] - The cell grid abstraction and its file readers
//  2. [lookup] - Locating tables, rows and columns inside a grid
//  3. [interp] - Clamped 1-D and 2-D linear interpolation
//  4. [chart] - Named digitized charts built on [interp]
//  5. [workbook] - Cached loading of workbook files into grids
//
// # Architecture
//
// The typical data flow:
//
//	xlsx / csv / json file
//	         ↓
//	    [workbook] package (read, hash, cache)
//	         ↓
//	    [grid] package (cells addressed by 1-based row and column)
//	         ↓
//	    [lookup] package (table → row → column)
//	         ↓
//	    [interp] / [chart] packages (interpolate between rows)
//	         ↓
//	    numbers, [trace] steps, [render] tables
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/melib/pkg/chart"
//	    "github.com/matzehuels/melib/pkg/lookup"
//	    "github.com/matzehuels/melib/pkg/trace"
//	    "github.com/matzehuels/melib/pkg/workbook"
//	)
//
//	// 1. Load the workbook
//	loader := workbook.NewLoader(nil, nil, nil)
//	g, _ := loader.Grid(ctx, "machine_elements.xlsx", "")
//
//	// 2. Read a row
//	row, _ := lookup.ReadRow(g, 1, "GRADE 8.8", []string{"Sp", "Sy"},
//	    lookup.Options{Layout: lookup.WorkbookLayout})
//
//	// 3. Read a chart, recording the step
//	cat, _ := chart.Builtin()
//	ks, _ := cat.Curve("agma.Ks")
//	var tr trace.Trace
//	k, _ := ks.At(8, &tr)
//
// # Main Packages
//
// ## Data
//
// [grid] - Cell values (empty, number, text), the in-memory grid, and
// coercion of raw spreadsheet strings. Readers live in subpackages:
// [grid/xlsx] (Excel via excelize) and [grid/csvgrid].
//
// [lookup] - Table location by tag, row lookup by label, column lookup by
// header, row reads with an explicit missing-value policy, and table
// comparison for checking student workbooks against a reference.
//
// [io] - A sparse JSON form of a grid, used for caching and fixtures.
//
// ## Numerics
//
// [interp] - Linear and bilinear interpolation over strictly increasing
// breakpoints, clamped at the edges.
//
// [chart] - Digitized design charts loaded from TOML or YAML catalogs, with
// a builtin catalog compiled into the library.
//
// [trace] - Optional recording of each lookup and interpolation step for
// worked solutions.
//
// ## Infrastructure
//
// [workbook] - Loader with content-addressed caching (read → parse → store).
//
// [cache] - File and null cache backends and key derivation.
//
// [config] - Settings from file and MELIB_* environment variables.
//
// [observability] - Hooks for load and cache events.
//
// [render] - Markdown and terminal renderings of a table.
//
// [errors] - Coded errors (NOT_FOUND family, INVALID_INPUT family).
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/lookup/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
//	mage test                            # Same, via magefiles
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/grid
// [grid/xlsx]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/grid/xlsx
// [grid/csvgrid]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/grid/csvgrid
// [lookup]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/lookup
// [io]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/io
// [interp]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/interp
// [chart]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/chart
// [trace]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/trace
// [workbook]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/workbook
// [cache]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/melib/pkg/errors
package pkg
