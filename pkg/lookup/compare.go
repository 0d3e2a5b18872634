package lookup

import (
	"fmt"
	"math"

	"github.com/matzehuels/melib/pkg/grid"
)

// DefaultTolerance is the relative tolerance used by SameTable for rows
// without an entry in the tolerance map.
const DefaultTolerance = 0.001

// Similar reports whether x and y agree within the relative tolerance eps,
// measured as |x-y| / |x+y|. When x+y is zero both must be within eps of
// zero.
func Similar(x, y, eps float64) bool {
	sum := math.Abs(x + y)
	if sum == 0 {
		return math.Abs(x) <= eps
	}
	return math.Abs(x-y)/sum <= eps
}

// Mismatch describes the first differing row found by SameTable.
type Mismatch struct {
	Row         int
	Label       string
	Description string
	Want        float64
	Got         float64
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("row %d (%s): %g and %g", m.Row, m.Label, m.Want, m.Got)
}

// SameTable compares table tag in want against the same rows of got. col is
// the zero-based offset of the compared column from the data column.
// Tolerances override DefaultTolerance per row label. A blank cell in got is
// not compared. It returns the first row that differs, or nil.
func SameTable(want, got grid.Grid, tag, col int, tolerances map[string]float64, layout Layout) (*Mismatch, error) {
	t, err := FindTable(want, tag, layout)
	if err != nil {
		return nil, err
	}
	c := t.Layout.DataCol + col
	rows := t.Rows(want)
	for ref, ok := rows.Next(); ok; ref, ok = rows.Next() {
		gv := grid.At(got, ref.Row, c)
		if gv.IsEmpty() {
			continue
		}
		tol := DefaultTolerance
		if v, ok := tolerances[ref.Label]; ok {
			tol = v
		}
		w, _ := numeric(grid.At(want, ref.Row, c))
		g, _ := numeric(gv)
		if !Similar(w, g, tol) {
			return &Mismatch{
				Row:         ref.Row,
				Label:       ref.Label,
				Description: grid.At(want, ref.Row, t.Layout.DescriptionColumn()).Text(),
				Want:        w,
				Got:         g,
			}, nil
		}
	}
	return nil, nil
}
