package lookup

import (
	"math"

	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
)

// Table is a located table. It holds only coordinates; the grid is passed to
// each call.
type Table struct {
	Tag    int
	Row    int // marker row
	Layout Layout
}

// HeaderRow returns the row that holds the column headers.
func (t Table) HeaderRow() int { return t.Row + 1 }

// FirstDataRow returns the row of the first data row, after any preamble.
func (t Table) FirstDataRow() int { return t.Row + 2 + t.Layout.Preamble }

// TableAt reports whether row is a table marker row under layout and, if so,
// returns its tag. A marker whose tag cell is not an integer is not a table.
func TableAt(g grid.Grid, row int, layout Layout) (tag int, ok bool) {
	layout = layout.orDefault()
	m := grid.At(g, row, layout.MarkerCol)
	if m.Kind() != grid.KindText || m.Text() != layout.Marker {
		return 0, false
	}
	n, isNum := grid.At(g, row, layout.TagCol).Num()
	if !isNum || n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}

// FindTable scans from the top of the grid for the table tagged tag.
func FindTable(g grid.Grid, tag int, layout Layout) (Table, error) {
	layout = layout.orDefault()
	if err := layout.Validate(); err != nil {
		return Table{}, err
	}
	for r := 1; r <= g.MaxRow(); r++ {
		if t, ok := TableAt(g, r, layout); ok && t == tag {
			return Table{Tag: tag, Row: r, Layout: layout}, nil
		}
	}
	return Table{}, errors.New(errors.ErrCodeTableNotFound, "table %d not found", tag)
}

// RowRef is one data row yielded by a Rows cursor.
type RowRef struct {
	Row   int
	Label string
}

// Rows iterates the data rows of a table.
type Rows struct {
	g    grid.Grid
	t    Table
	next int
	done bool
}

// Rows returns a cursor positioned before the first data row.
func (t Table) Rows(g grid.Grid) *Rows {
	return &Rows{g: g, t: t, next: t.FirstDataRow()}
}

// Next advances to the next data row. It returns false once the table has
// ended: at a blank label, at another table's marker row, or past the last
// row of the grid. After false, every later call also returns false.
func (r *Rows) Next() (RowRef, bool) {
	if r.done {
		return RowRef{}, false
	}
	if r.next > r.g.MaxRow() {
		r.done = true
		return RowRef{}, false
	}
	label := grid.At(r.g, r.next, r.t.Layout.LabelCol)
	if label.IsEmpty() {
		r.done = true
		return RowRef{}, false
	}
	if _, ok := TableAt(r.g, r.next, r.t.Layout); ok {
		r.done = true
		return RowRef{}, false
	}
	ref := RowRef{Row: r.next, Label: label.Text()}
	r.next++
	return ref, true
}

// Labels returns the labels of every data row in order.
func (t Table) Labels(g grid.Grid) []string {
	var out []string
	rows := t.Rows(g)
	for ref, ok := rows.Next(); ok; ref, ok = rows.Next() {
		out = append(out, ref.Label)
	}
	return out
}

// Headers returns the header names from the data column rightwards, up to
// the first blank header cell.
func (t Table) Headers(g grid.Grid) []string {
	var out []string
	hr := t.HeaderRow()
	for c := t.Layout.DataCol; c <= g.MaxCol(); c++ {
		v := grid.At(g, hr, c)
		if v.IsEmpty() {
			break
		}
		out = append(out, v.Text())
	}
	return out
}

// FindRow returns the grid row of the data row labelled label.
func FindRow(g grid.Grid, t Table, label string) (int, error) {
	if err := errors.ValidateLabel(label); err != nil {
		return 0, err
	}
	rows := t.Rows(g)
	for ref, ok := rows.Next(); ok; ref, ok = rows.Next() {
		if ref.Label == label {
			return ref.Row, nil
		}
	}
	return 0, errors.New(errors.ErrCodeRowNotFound, "row %q not found in table %d", label, t.Tag)
}

// FindColumn returns the grid column whose header equals name. Matching is
// exact and case-sensitive.
func FindColumn(g grid.Grid, t Table, name string) (int, error) {
	for i, h := range t.Headers(g) {
		if h == name {
			return t.Layout.DataCol + i, nil
		}
	}
	return 0, errors.New(errors.ErrCodeColumnNotFound, "column %q not found in table %d", name, t.Tag)
}
