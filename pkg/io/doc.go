// Package io provides JSON import and export for worksheet grids.
//
// # Overview
//
// This package serializes a [grid.Grid] to and from a small JSON format. The
// format is used for:
//
//   - Caching parsed workbooks so a second load skips the spreadsheet parser
//   - Fixtures that are easier to review in a diff than a binary workbook
//   - Round-trip preservation: export, re-import and get the same cells back
//
// # JSON Format
//
// Only non-empty cells are written. Each cell carries its 1-based row and
// column and exactly one of a number or a text value:
//
//	{
//	  "generator": "melib v1.0.0",
//	  "rows": 3,
//	  "cols": 3,
//	  "cells": [
//	    {"r": 1, "c": 1, "t": "Table"},
//	    {"r": 1, "c": 2, "n": 1},
//	    {"r": 2, "c": 1, "t": "GRADE"},
//	    {"r": 2, "c": 2, "t": "Dmin"},
//	    {"r": 3, "c": 1, "t": "GRADE 4.8"},
//	    {"r": 3, "c": 2, "n": 1.6}
//	  ]
//	}
//
// "rows" and "cols" are the grid bounds at export time. On import, cells
// outside declared bounds are rejected.
//
// # Import
//
// Use [ImportJSON] to read a grid from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	g, err := io.ImportJSON("bolts.json")
//	if err != nil {
//	    return err
//	}
//
// Malformed documents fail with INVALID_FORMAT, naming the offending cell.
//
// # Export
//
// Use [ExportJSON] to write a grid to a file, or [WriteJSON] to write to any
// io.Writer. Text cells are written verbatim, including unresolved "=B7"
// references, so a round trip keeps them.
//
// # Concurrency
//
// [ReadJSON] and [ImportJSON] return independent grids. Exporting a grid
// that another goroutine is modifying is not safe.
package io
