package grid

import (
	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/melib/pkg/errors"
)

// Worksheet limits of the xlsx format. Grids never address cells beyond them.
const (
	MaxRows = excelize.TotalRows
	MaxCols = excelize.MaxColumns
)

// InBounds reports whether the 1-based (row, col) lies inside the worksheet
// limits.
func InBounds(row, col int) bool {
	return row >= 1 && col >= 1 && row <= MaxRows && col <= MaxCols
}

// Memory is an in-memory Grid. Rows are stored densely up to the widest
// populated column of each row.
//
// The zero value is an empty grid ready for use.
type Memory struct {
	rows   [][]Value
	maxCol int
}

// NewMemory returns an empty grid.
func NewMemory() *Memory {
	return &Memory{}
}

// FromRows builds a grid from literal rows; rows[0] becomes row 1 and
// rows[i][0] becomes column 1. Accepted element types are nil, Value,
// string (passed through Coerce), float64, float32, int and int64.
// Any other type is rejected with INVALID_INPUT.
func FromRows(rows [][]any) (*Memory, error) {
	m := NewMemory()
	for i, row := range rows {
		for j, raw := range row {
			v, err := valueOf(raw)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cell (%d, %d)", i+1, j+1)
			}
			m.Set(i+1, j+1, v)
		}
	}
	return m, nil
}

// MustFromRows is like FromRows but panics on error. It is intended for
// fixtures and package-level tables.
func MustFromRows(rows [][]any) *Memory {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func valueOf(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Empty(), nil
	case Value:
		return x, nil
	case string:
		return Coerce(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	default:
		return Value{}, errors.New(errors.ErrCodeInvalidInput, "unsupported cell type %T", raw)
	}
}

// Set stores v at the 1-based (row, col). Coordinates outside
// [MaxRows] x [MaxCols] are ignored. Setting an empty value inside the
// populated area clears the cell but does not shrink the grid.
func (m *Memory) Set(row, col int, v Value) {
	if !InBounds(row, col) {
		return
	}
	if v.IsEmpty() && (row > len(m.rows) || col > len(m.rows[row-1])) {
		return
	}
	for len(m.rows) < row {
		m.rows = append(m.rows, nil)
	}
	r := m.rows[row-1]
	for len(r) < col {
		r = append(r, Value{})
	}
	r[col-1] = v
	m.rows[row-1] = r
	if col > m.maxCol {
		m.maxCol = col
	}
}

// Cell implements Grid.
func (m *Memory) Cell(row, col int) Value {
	if row < 1 || col < 1 || row > len(m.rows) {
		return Value{}
	}
	r := m.rows[row-1]
	if col > len(r) {
		return Value{}
	}
	return r[col-1]
}

// MaxRow implements Grid.
func (m *Memory) MaxRow() int { return len(m.rows) }

// MaxCol implements Grid.
func (m *Memory) MaxCol() int { return m.maxCol }

// Row returns a copy of the populated cells of a 1-based row.
func (m *Memory) Row(row int) []Value {
	if row < 1 || row > len(m.rows) {
		return nil
	}
	out := make([]Value, len(m.rows[row-1]))
	copy(out, m.rows[row-1])
	return out
}

// Copy returns a Memory holding every cell of g.
func Copy(g Grid) *Memory {
	if m, ok := g.(*Memory); ok {
		out := &Memory{rows: make([][]Value, len(m.rows)), maxCol: m.maxCol}
		for i, r := range m.rows {
			out.rows[i] = append([]Value(nil), r...)
		}
		return out
	}
	out := NewMemory()
	for i := 1; i <= g.MaxRow(); i++ {
		for j := 1; j <= g.MaxCol(); j++ {
			if v := g.Cell(i, j); !v.IsEmpty() {
				out.Set(i, j, v)
			}
		}
	}
	return out
}

var _ Grid = (*Memory)(nil)
