package lookup

import "github.com/matzehuels/melib/pkg/errors"

// DefaultMarker is the text that opens a table in the marker column.
const DefaultMarker = "Table"

// Layout describes where a table's parts live in the worksheet. Columns are
// 1-based.
type Layout struct {
	// Marker is the text in MarkerCol that identifies a table's first row.
	Marker string

	// MarkerCol and TagCol hold the marker text and the numeric table tag.
	MarkerCol int
	TagCol    int

	// LabelCol holds the row label of each data row.
	LabelCol int

	// DescriptionCol holds a free-text description of each data row.
	// Zero means the column just left of DataCol.
	DescriptionCol int

	// DataCol is the first value column; headers are read from here
	// rightwards until a blank header cell.
	DataCol int

	// Preamble is the number of rows between the header row and the first
	// data row (units, notes). Blank labels in the preamble do not end the
	// table.
	Preamble int
}

// DefaultLayout is the compact convention: marker and labels in column A, tag
// and first values in column B, no preamble.
var DefaultLayout = Layout{
	Marker:    DefaultMarker,
	MarkerCol: 1,
	TagCol:    2,
	LabelCol:  1,
	DataCol:   2,
}

// WorkbookLayout is the course workbook convention: marker and labels in
// column C, tag in D, description in E, values from F, and three preamble
// rows below the header.
var WorkbookLayout = Layout{
	Marker:         DefaultMarker,
	MarkerCol:      3,
	TagCol:         4,
	LabelCol:       3,
	DescriptionCol: 5,
	DataCol:        6,
	Preamble:       3,
}

// Validate checks that the layout is usable.
func (l Layout) Validate() error {
	if l.Marker == "" {
		return errors.New(errors.ErrCodeInvalidLayout, "layout marker is empty")
	}
	for _, c := range []struct {
		name string
		col  int
	}{
		{"marker", l.MarkerCol},
		{"tag", l.TagCol},
		{"label", l.LabelCol},
		{"data", l.DataCol},
	} {
		if c.col < 1 {
			return errors.New(errors.ErrCodeInvalidLayout, "%s column must be >= 1, got %d", c.name, c.col)
		}
	}
	if l.DescriptionCol < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "description column must be >= 0, got %d", l.DescriptionCol)
	}
	if l.MarkerCol == l.TagCol {
		return errors.New(errors.ErrCodeInvalidLayout, "marker and tag share column %d", l.MarkerCol)
	}
	if l.DataCol == l.LabelCol {
		return errors.New(errors.ErrCodeInvalidLayout, "label and data share column %d", l.DataCol)
	}
	if l.Preamble < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "preamble must be >= 0, got %d", l.Preamble)
	}
	return nil
}

// DescriptionColumn returns DescriptionCol, resolving the zero default.
func (l Layout) DescriptionColumn() int {
	if l.DescriptionCol > 0 {
		return l.DescriptionCol
	}
	return l.DataCol - 1
}

// HasDescription reports whether the layout has a description column apart
// from the label column. DefaultLayout does not.
func (l Layout) HasDescription() bool {
	l = l.orDefault()
	c := l.DescriptionColumn()
	return c >= 1 && c != l.LabelCol
}

// orDefault returns DefaultLayout for the zero Layout.
func (l Layout) orDefault() Layout {
	if l == (Layout{}) {
		return DefaultLayout
	}
	return l
}
