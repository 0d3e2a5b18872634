package lookup

import (
	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
)

// MissingPolicy decides what ReadRow does with a field it cannot read as a
// number.
type MissingPolicy int

const (
	// MissingAsZero reads the field as 0 and reports its FieldStatus.
	MissingAsZero MissingPolicy = iota
	// MissingAsError fails the whole read.
	MissingAsError
)

// FieldStatus records how one requested field was read.
type FieldStatus int

const (
	FieldOK FieldStatus = iota
	FieldMissingColumn
	FieldEmpty
	FieldNotNumeric
)

func (s FieldStatus) String() string {
	switch s {
	case FieldOK:
		return "ok"
	case FieldMissingColumn:
		return "missing column"
	case FieldEmpty:
		return "empty"
	case FieldNotNumeric:
		return "not numeric"
	default:
		return "unknown"
	}
}

// Options configures ReadRow. The zero value uses DefaultLayout and
// MissingAsZero.
type Options struct {
	Layout  Layout
	Missing MissingPolicy
}

// Row is the result of ReadRow. Values, Status and Columns are parallel.
type Row struct {
	Table   Table
	Index   int // grid row
	Label   string
	Columns []string
	Values  []float64
	Status  []FieldStatus
}

// OK reports whether every field was read as a number.
func (r Row) OK() bool {
	for _, s := range r.Status {
		if s != FieldOK {
			return false
		}
	}
	return true
}

// Get returns the value read for column.
func (r Row) Get(column string) (float64, bool) {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i], r.Status[i] == FieldOK
		}
	}
	return 0, false
}

// numeric reads v as a float64 and classifies it.
func numeric(v grid.Value) (float64, FieldStatus) {
	if v.IsEmpty() {
		return 0, FieldEmpty
	}
	if n, ok := v.Num(); ok {
		return n, FieldOK
	}
	return 0, FieldNotNumeric
}

// ReadRow reads the named columns of the row labelled label in table tag.
// A nil columns slice reads every header of the table.
//
// The table and the row must exist. Column and cell problems are handled by
// opts.Missing.
func ReadRow(g grid.Grid, tag int, label string, columns []string, opts Options) (Row, error) {
	t, err := FindTable(g, tag, opts.Layout)
	if err != nil {
		return Row{}, err
	}
	r, err := FindRow(g, t, label)
	if err != nil {
		return Row{}, err
	}

	headers := t.Headers(g)
	if columns == nil {
		columns = headers
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := index[h]; !dup {
			index[h] = t.Layout.DataCol + i
		}
	}

	row := Row{
		Table:   t,
		Index:   r,
		Label:   label,
		Columns: append([]string(nil), columns...),
		Values:  make([]float64, len(columns)),
		Status:  make([]FieldStatus, len(columns)),
	}
	for i, name := range columns {
		col, found := index[name]
		if !found {
			row.Status[i] = FieldMissingColumn
		} else {
			row.Values[i], row.Status[i] = numeric(grid.At(g, r, col))
		}
		if row.Status[i] == FieldOK || opts.Missing == MissingAsZero {
			continue
		}
		if row.Status[i] == FieldMissingColumn {
			return Row{}, errors.New(errors.ErrCodeColumnNotFound,
				"column %q not found in table %d", name, tag)
		}
		return Row{}, errors.New(errors.ErrCodeInvalidInput,
			"table %d row %q column %q: %s", tag, label, name, row.Status[i])
	}
	return row, nil
}

// Value returns a single cell of table tag. An empty column selects the
// layout's data column.
func Value(g grid.Grid, tag int, label, column string, layout Layout) (grid.Value, error) {
	t, err := FindTable(g, tag, layout)
	if err != nil {
		return grid.Value{}, err
	}
	r, err := FindRow(g, t, label)
	if err != nil {
		return grid.Value{}, err
	}
	col := t.Layout.DataCol
	if column != "" {
		if col, err = FindColumn(g, t, column); err != nil {
			return grid.Value{}, err
		}
	}
	return grid.At(g, r, col), nil
}

// Description returns the description cell of the row labelled label.
func Description(g grid.Grid, tag int, label string, layout Layout) (string, error) {
	t, err := FindTable(g, tag, layout)
	if err != nil {
		return "", err
	}
	r, err := FindRow(g, t, label)
	if err != nil {
		return "", err
	}
	return grid.At(g, r, t.Layout.DescriptionColumn()).Text(), nil
}

// ReadColumn reads n values down column, starting at the row labelled
// fromLabel. Cells that are blank or not numeric read as 0. The read is by
// position and may run past the end of the table.
func ReadColumn(g grid.Grid, tag int, fromLabel, column string, n int, layout Layout) ([]float64, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "count must be >= 0, got %d", n)
	}
	t, err := FindTable(g, tag, layout)
	if err != nil {
		return nil, err
	}
	r, err := FindRow(g, t, fromLabel)
	if err != nil {
		return nil, err
	}
	col, err := FindColumn(g, t, column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i], _ = numeric(grid.At(g, r+i, col))
	}
	return out, nil
}
