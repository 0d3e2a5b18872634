// Package grid defines the rectangular cell grid that engineering tables live
// in, together with an in-memory implementation.
//
// # Addressing
//
// Rows and columns are 1-based, matching spreadsheet numbering: the top-left
// cell is (1, 1), which is A1 in a workbook. Reading outside the populated
// area yields an empty [Value] rather than an error, so scanners can walk off
// the edge of a table without bounds checks.
//
// # Values
//
// A [Value] is a tagged variant holding nothing, a number or a text string.
// Sources that only see text (CSV, hand-written fixtures) run every cell
// through [Coerce], which applies the same rules the workbook reader uses:
// a leading byte-order mark is stripped, surrounding space is trimmed, an
// empty string becomes empty and anything that parses as a finite float
// becomes a number.
//
// # Concurrency
//
// A [Memory] grid is safe for concurrent readers once it has been built.
// Set must not race with readers.
package grid

import (
	"math"
	"strconv"
)

// Grid is the read-only view of a loaded worksheet that lookups scan.
type Grid interface {
	// Cell returns the value at the 1-based (row, col). Cells outside the
	// populated area are empty.
	Cell(row, col int) Value

	// MaxRow returns the index of the last populated row, or 0 when the
	// grid is empty.
	MaxRow() int

	// MaxCol returns the index of the last populated column, or 0 when the
	// grid is empty.
	MaxCol() int
}

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindEmpty is a blank cell.
	KindEmpty Kind = iota
	// KindNumber is a finite float64.
	KindNumber
	// KindText is a non-empty string that did not parse as a number.
	KindText
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "empty"
	}
}

// Value is a single cell. The zero value is an empty cell.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Empty returns an empty cell value.
func Empty() Value { return Value{} }

// Number returns a numeric cell value. NaN and infinities are stored as text
// so that a numeric read never yields a non-finite result.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{kind: KindText, text: strconv.FormatFloat(f, 'g', -1, 64)}
	}
	return Value{kind: KindNumber, num: f}
}

// Text returns a text cell value. An empty string yields an empty cell.
func Text(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: KindText, text: s}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is a blank cell.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Num returns the numeric value and true when v is a number.
// For any other kind it returns 0 and false.
func (v Value) Num() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the cell as it would be compared against a label or header:
// text verbatim, numbers in their shortest round-trip form ("4.8", "17"),
// and "" for an empty cell.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	default:
		return ""
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.num == o.num && v.text == o.text
}

// String implements fmt.Stringer.
func (v Value) String() string { return v.Text() }
