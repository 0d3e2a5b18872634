package chart

import (
	"fmt"

	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
	"github.com/matzehuels/melib/pkg/lookup"
)

// CurveFromTable builds a curve from two columns of table tag, one point per
// data row. An empty xCol takes x from the row labels. Every cell used must
// be numeric.
func CurveFromTable(g grid.Grid, tag int, xCol, yCol string, layout lookup.Layout) (*Curve, error) {
	t, err := lookup.FindTable(g, tag, layout)
	if err != nil {
		return nil, err
	}
	xc := t.Layout.LabelCol
	if xCol != "" {
		if xc, err = lookup.FindColumn(g, t, xCol); err != nil {
			return nil, err
		}
	}
	yc, err := lookup.FindColumn(g, t, yCol)
	if err != nil {
		return nil, err
	}

	c := &Curve{
		Name:   fmt.Sprintf("table%d.%s", tag, yCol),
		XLabel: xCol,
		YLabel: yCol,
	}
	rows := t.Rows(g)
	for ref, ok := rows.Next(); ok; ref, ok = rows.Next() {
		x, err := cellNumber(g, ref, xc)
		if err != nil {
			return nil, err
		}
		y, err := cellNumber(g, ref, yc)
		if err != nil {
			return nil, err
		}
		c.X = append(c.X, x)
		c.Y = append(c.Y, y)
	}
	if err := c.Compile(); err != nil {
		return nil, err
	}
	return c, nil
}

// SurfaceFromTable builds a surface from table tag: the x axis from the
// numeric headers, the y axis from the numeric row labels and z from the
// cells between them.
func SurfaceFromTable(g grid.Grid, tag int, layout lookup.Layout) (*Surface, error) {
	t, err := lookup.FindTable(g, tag, layout)
	if err != nil {
		return nil, err
	}

	headers := t.Headers(g)
	s := &Surface{Name: fmt.Sprintf("table%d", tag), X: make([]float64, len(headers))}
	for i, h := range headers {
		x, ok := grid.Coerce(h).Num()
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"table %d: header %q is not a number", tag, h)
		}
		s.X[i] = x
	}

	rows := t.Rows(g)
	for ref, ok := rows.Next(); ok; ref, ok = rows.Next() {
		y, err := cellNumber(g, ref, t.Layout.LabelCol)
		if err != nil {
			return nil, err
		}
		zrow := make([]float64, len(headers))
		for i := range headers {
			if zrow[i], err = cellNumber(g, ref, t.Layout.DataCol+i); err != nil {
				return nil, err
			}
		}
		s.Y = append(s.Y, y)
		s.Z = append(s.Z, zrow)
	}
	if err := s.Compile(); err != nil {
		return nil, err
	}
	return s, nil
}

func cellNumber(g grid.Grid, ref lookup.RowRef, col int) (float64, error) {
	v := grid.At(g, ref.Row, col)
	n, ok := v.Num()
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"row %q column %d: %q is not a number", ref.Label, col, v.Text())
	}
	return n, nil
}
