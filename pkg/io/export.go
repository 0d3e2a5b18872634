package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/melib/pkg/buildinfo"
	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
)

type document struct {
	Generator string `json:"generator,omitempty"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Cells     []cell `json:"cells"`
}

type cell struct {
	R int      `json:"r"`
	C int      `json:"c"`
	N *float64 `json:"n,omitempty"`
	T *string  `json:"t,omitempty"`
}

// WriteJSON encodes the non-empty cells of g as JSON and writes them to w,
// in row-major order. The output can be re-imported with [ReadJSON].
func WriteJSON(g grid.Grid, w io.Writer) error {
	out := document{
		Generator: buildinfo.Generator(),
		Rows:      g.MaxRow(),
		Cols:      g.MaxCol(),
		Cells:     []cell{},
	}

	for r := 1; r <= g.MaxRow(); r++ {
		for c := 1; c <= g.MaxCol(); c++ {
			v := g.Cell(r, c)
			switch v.Kind() {
			case grid.KindNumber:
				n, _ := v.Num()
				out.Cells = append(out.Cells, cell{R: r, C: c, N: &n})
			case grid.KindText:
				s := v.Text()
				out.Cells = append(out.Cells, cell{R: r, C: c, T: &s})
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode grid")
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g grid.Grid, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "close %s", path)
	}
	return nil
}
