package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/melib/pkg/buildinfo"
	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
)

func TestRoundTrip(t *testing.T) {
	src := grid.MustFromRows([][]any{
		{"Table", 1},
		{"GRADE", "Dmin", "Dmax"},
		{"GRADE 4.8", 1.6, nil},
		{"=B3", grid.Text("10")},
	})

	var buf bytes.Buffer
	if err := WriteJSON(src, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"generator": "`+buildinfo.Generator()+`"`) {
		t.Errorf("export should carry the generator, got:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got.MaxRow() != src.MaxRow() || got.MaxCol() != src.MaxCol() {
		t.Fatalf("size = (%d, %d), want (%d, %d)", got.MaxRow(), got.MaxCol(), src.MaxRow(), src.MaxCol())
	}
	for r := 1; r <= src.MaxRow(); r++ {
		for c := 1; c <= src.MaxCol(); c++ {
			if !got.Cell(r, c).Equal(src.Cell(r, c)) {
				t.Errorf("Cell(%d, %d) = %v (%v), want %v (%v)", r, c,
					got.Cell(r, c), got.Cell(r, c).Kind(), src.Cell(r, c), src.Cell(r, c).Kind())
			}
		}
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed", `{"cells": [`},
		{"zero row", `{"cells": [{"r": 0, "c": 1, "n": 1}]}`},
		{"both values", `{"cells": [{"r": 1, "c": 1, "n": 1, "t": "x"}]}`},
		{"no value", `{"cells": [{"r": 1, "c": 1}]}`},
		{"outside bounds", `{"rows": 1, "cols": 1, "cells": [{"r": 2, "c": 1, "n": 1}]}`},
		{"column past worksheet", `{"cells": [{"r": 1, "c": 20000000, "n": 1}]}`},
		{"row past worksheet", `{"rows": 0, "cells": [{"r": 1048577, "c": 1, "n": 1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.src))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadJSON() error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	src := grid.MustFromRows([][]any{{"Table", 2}})

	if err := ExportJSON(src, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if n, _ := got.Cell(1, 2).Num(); n != 2 {
		t.Errorf("Cell(1, 2) = %v, want 2", got.Cell(1, 2))
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "none.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
