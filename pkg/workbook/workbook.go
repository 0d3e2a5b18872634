// Package workbook loads data workbooks into memory grids, with caching.
//
// A workbook is a spreadsheet file holding design tables (see package
// lookup). Loading one goes through three stages:
//
//  1. Read: the file bytes are read and hashed
//  2. Parse: the bytes are decoded by the reader for the file's format
//     (xlsx, csv, or the JSON grid format of package io)
//  3. Store: the parsed grid is written to the cache under a key derived
//     from the content hash and sheet name
//
// A later load of the same content skips the parse stage.
//
// # Usage
//
//	c, _ := cache.NewFileCache(dir)
//	loader := workbook.NewLoader(c, nil, logger)
//	defer loader.Close()
//
//	res, err := loader.Load(ctx, workbook.Options{Path: "data/machine_elements.xlsx"})
//	if err != nil {
//	    return err
//	}
//	row, err := lookup.ReadRow(res.Grid, 1, "M10", nil, lookup.Options{})
package workbook

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
)

// DefaultTTL is how long a parsed grid stays in the cache.
const DefaultTTL = 7 * 24 * time.Hour

// Format names a workbook file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported workbook extension %q", ext)
	}
}

// Options configures a single load.
type Options struct {
	// Path is the workbook file. Required.
	Path string

	// Sheet selects an xlsx worksheet; empty means the active sheet. Must be
	// empty for csv and json files.
	Sheet string

	// Refresh skips the cache lookup. The freshly parsed grid still replaces
	// the cached entry.
	Refresh bool

	// TTL of the cache entry. Zero means DefaultTTL.
	TTL time.Duration

	// Logger overrides the loader's logger for this call.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks the options and fills in defaults. It
// returns the detected format.
func (o *Options) ValidateAndSetDefaults() (Format, error) {
	if err := errors.ValidatePath(o.Path); err != nil {
		return "", err
	}
	format, err := DetectFormat(o.Path)
	if err != nil {
		return "", err
	}
	if err := errors.ValidateSheetName(o.Sheet); err != nil {
		return "", err
	}
	if o.Sheet != "" && format != FormatXLSX {
		return "", errors.New(errors.ErrCodeInvalidInput, "sheet %q given for a %s file", o.Sheet, format)
	}
	if o.TTL < 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "negative cache ttl %s", o.TTL)
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	return format, nil
}

// Result is a loaded workbook.
type Result struct {
	Grid        *grid.Memory
	Format      Format
	ContentHash string
	CacheHit    bool
	Stats       Stats
}

// Stats describes a load.
type Stats struct {
	LoadTime time.Duration
	Rows     int
	Cols     int
}
