// Package csvgrid loads comma-separated text into a grid. Every field goes
// through [grid.Coerce]; records may have different lengths.
package csvgrid

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
)

// Read parses CSV from r. Record i becomes row i+1.
func Read(r io.Reader) (*grid.Memory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	g := grid.NewMemory()
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse CSV")
		}
		if row > grid.MaxRows || len(rec) > grid.MaxCols {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"CSV record %d exceeds %dx%d worksheet", row, grid.MaxRows, grid.MaxCols)
		}
		for j, field := range rec {
			g.Set(row, j+1, grid.Coerce(field))
		}
	}
	return g, nil
}

// Open reads the CSV file at path.
func Open(path string) (*grid.Memory, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "CSV file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
