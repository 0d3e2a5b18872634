package grid

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// byteOrderMark sometimes leads the first cell of files saved on macOS.
const byteOrderMark = "\ufeff"

// Coerce converts raw cell text into a Value.
//
// A leading byte-order mark is removed and surrounding whitespace trimmed.
// The empty string becomes an empty cell; a string that parses as a finite
// float64 becomes a number; anything else is text. Strings such as "NaN" or
// "Inf" stay text.
func Coerce(raw string) Value {
	s := strings.TrimSpace(strings.TrimPrefix(raw, byteOrderMark))
	if s == "" {
		return Empty()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Number(f)
	}
	return Text(s)
}

// Reference reports whether v is a simple cell reference such as "=B7" or
// "=$B$7" and returns its 1-based coordinates.
func Reference(v Value) (row, col int, ok bool) {
	if v.Kind() != KindText {
		return 0, 0, false
	}
	s := v.Text()
	if !strings.HasPrefix(s, "=") {
		return 0, 0, false
	}
	name := strings.ReplaceAll(s[1:], "$", "")
	c, r, err := excelize.CellNameToCoordinates(name)
	if err != nil {
		return 0, 0, false
	}
	return r, c, true
}

// Resolve follows a simple cell reference one hop: if v is "=B7" the value
// of B7 is returned. Anything else, including formulas that are not a bare
// reference, is returned unchanged.
func Resolve(g Grid, v Value) Value {
	row, col, ok := Reference(v)
	if !ok {
		return v
	}
	return g.Cell(row, col)
}

// At returns the cell at (row, col) with references resolved.
func At(g Grid, row, col int) Value {
	return Resolve(g, g.Cell(row, col))
}
