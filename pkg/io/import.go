package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
)

// ReadJSON decodes a JSON grid from r.
//
// Each cell must have "r" and "c" fields inside the worksheet limits
// ([grid.MaxRows] x [grid.MaxCols]) and exactly one of "n"
// (number) or "t" (text). When the document declares positive "rows" or
// "cols", every cell must lie inside them. A later cell at the same position
// replaces an earlier one.
//
// Text values are stored as text without coercion, so "1.6" written as text
// stays text.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*grid.Memory, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode grid")
	}

	g := grid.NewMemory()
	for i, c := range doc.Cells {
		if c.R < 1 || c.C < 1 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "cell %d: position (%d, %d) is not 1-based", i, c.R, c.C)
		}
		if !grid.InBounds(c.R, c.C) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"cell %d: position (%d, %d) beyond %dx%d worksheet", i, c.R, c.C, grid.MaxRows, grid.MaxCols)
		}
		if (doc.Rows > 0 && c.R > doc.Rows) || (doc.Cols > 0 && c.C > doc.Cols) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"cell %d: position (%d, %d) outside declared %dx%d grid", i, c.R, c.C, doc.Rows, doc.Cols)
		}
		switch {
		case c.N != nil && c.T != nil:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "cell (%d, %d): both number and text", c.R, c.C)
		case c.N != nil:
			g.Set(c.R, c.C, grid.Number(*c.N))
		case c.T != nil:
			g.Set(c.R, c.C, grid.Text(*c.T))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "cell (%d, %d): no value", c.R, c.C)
		}
	}
	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded grid.
func ImportJSON(path string) (*grid.Memory, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "grid file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
