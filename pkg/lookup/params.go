package lookup

import (
	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/grid"
)

// FindParam returns the first grid row, scanning from the top, whose label
// cell equals label. Parameter rows stand on their own, outside any table,
// so table markers and blank rows do not stop the scan. Numeric labels match
// their plain decimal form, so "6205" finds a bearing number.
func FindParam(g grid.Grid, label string, layout Layout) (int, error) {
	if err := errors.ValidateLabel(label); err != nil {
		return 0, err
	}
	layout = layout.orDefault()
	for r := 1; r <= g.MaxRow(); r++ {
		v := grid.At(g, r, layout.LabelCol)
		if !v.IsEmpty() && v.Text() == label {
			return r, nil
		}
	}
	return 0, errors.New(errors.ErrCodeRowNotFound, "parameter %q not found", label)
}

// Param returns the cell of parameter row label in column col. A col of 0
// selects the layout's data column.
func Param(g grid.Grid, label string, col int, layout Layout) (grid.Value, error) {
	if col < 0 {
		return grid.Value{}, errors.New(errors.ErrCodeInvalidInput, "column must be >= 0, got %d", col)
	}
	layout = layout.orDefault()
	r, err := FindParam(g, label, layout)
	if err != nil {
		return grid.Value{}, err
	}
	if col == 0 {
		col = layout.DataCol
	}
	return grid.At(g, r, col), nil
}

// ParamDescription returns the description cell of parameter row label.
func ParamDescription(g grid.Grid, label string, layout Layout) (string, error) {
	layout = layout.orDefault()
	r, err := FindParam(g, label, layout)
	if err != nil {
		return "", err
	}
	return grid.At(g, r, layout.DescriptionColumn()).Text(), nil
}

// Params reads the data-column cell of each named parameter in order. The
// first missing parameter ends the read with ROW_NOT_FOUND.
func Params(g grid.Grid, labels []string, layout Layout) ([]grid.Value, error) {
	out := make([]grid.Value, len(labels))
	for i, label := range labels {
		v, err := Param(g, label, 0, layout)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
