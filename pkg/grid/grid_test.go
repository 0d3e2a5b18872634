package grid

import (
	"math"
	"testing"

	"github.com/matzehuels/melib/pkg/errors"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
		num  float64
		text string
	}{
		{"", KindEmpty, 0, ""},
		{"   ", KindEmpty, 0, ""},
		{"1.6", KindNumber, 1.6, "1.6"},
		{" 310 ", KindNumber, 310, "310"},
		{"-2.5e3", KindNumber, -2500, "-2500"},
		{"\ufeff42", KindNumber, 42, "42"},
		{"\ufeffTable", KindText, 0, "Table"},
		{"GRADE 4.8", KindText, 0, "GRADE 4.8"},
		{"NaN", KindText, 0, "NaN"},
		{"Inf", KindText, 0, "Inf"},
		{"=B7", KindText, 0, "=B7"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := Coerce(tt.raw)
			if v.Kind() != tt.kind {
				t.Fatalf("Kind() = %v, want %v", v.Kind(), tt.kind)
			}
			if n, _ := v.Num(); n != tt.num {
				t.Errorf("Num() = %v, want %v", n, tt.num)
			}
			if v.Text() != tt.text {
				t.Errorf("Text() = %q, want %q", v.Text(), tt.text)
			}
		})
	}
}

func TestValue(t *testing.T) {
	if !Empty().IsEmpty() || !(Value{}).IsEmpty() {
		t.Error("zero Value should be empty")
	}
	if !Text("").IsEmpty() {
		t.Error(`Text("") should be empty`)
	}
	if Number(math.NaN()).IsNumber() {
		t.Error("NaN must not be stored as a number")
	}
	if Number(math.Inf(1)).Kind() != KindText {
		t.Error("+Inf must be stored as text")
	}
	if _, ok := Text("1.5").Num(); ok {
		t.Error("Text value must not report a number")
	}
	if !Number(2).Equal(Coerce("2")) {
		t.Error("Number(2) should equal Coerce(\"2\")")
	}
	if Number(2).Equal(Text("2")) {
		t.Error("Number(2) should not equal Text(\"2\")")
	}
	if got := KindNumber.String(); got != "number" {
		t.Errorf("KindNumber.String() = %q, want %q", got, "number")
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	if m.MaxRow() != 0 || m.MaxCol() != 0 {
		t.Fatalf("empty grid size = (%d, %d), want (0, 0)", m.MaxRow(), m.MaxCol())
	}

	m.Set(3, 2, Number(7))
	m.Set(1, 5, Text("x"))
	m.Set(0, 1, Text("ignored"))
	m.Set(10, 10, Empty())
	m.Set(1, MaxCols+1, Number(1))
	m.Set(MaxRows+1, 1, Number(1))

	if m.MaxRow() != 3 {
		t.Errorf("MaxRow() = %d, want 3", m.MaxRow())
	}
	if m.MaxCol() != 5 {
		t.Errorf("MaxCol() = %d, want 5", m.MaxCol())
	}
	if n, ok := m.Cell(3, 2).Num(); !ok || n != 7 {
		t.Errorf("Cell(3, 2) = %v, want 7", m.Cell(3, 2))
	}
	if got := m.Cell(1, 5).Text(); got != "x" {
		t.Errorf("Cell(1, 5) = %q, want %q", got, "x")
	}
	for _, rc := range [][2]int{{0, 0}, {2, 1}, {3, 3}, {4, 1}, {-1, 2}, {100, 100}} {
		if !m.Cell(rc[0], rc[1]).IsEmpty() {
			t.Errorf("Cell(%d, %d) should be empty", rc[0], rc[1])
		}
	}

	m.Set(3, 2, Empty())
	if !m.Cell(3, 2).IsEmpty() {
		t.Error("Set(Empty) should clear the cell")
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{1, 1, true},
		{MaxRows, MaxCols, true},
		{0, 1, false},
		{1, 0, false},
		{MaxRows + 1, 1, false},
		{1, MaxCols + 1, false},
		{1, 20000000, false},
	}
	for _, tt := range tests {
		if got := InBounds(tt.row, tt.col); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]any{
		{"Table", 1},
		{"GRADE", "Dmin", "Dmax"},
		{"GRADE 4.8", 1.6, float32(10)},
		{nil, int64(3), Text("5")},
	})
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}

	if g.Cell(1, 1).Text() != "Table" {
		t.Errorf("Cell(1, 1) = %v, want Table", g.Cell(1, 1))
	}
	if n, _ := g.Cell(1, 2).Num(); n != 1 {
		t.Errorf("Cell(1, 2) = %v, want 1", g.Cell(1, 2))
	}
	if n, _ := g.Cell(3, 3).Num(); n != 10 {
		t.Errorf("Cell(3, 3) = %v, want 10", g.Cell(3, 3))
	}
	if !g.Cell(4, 1).IsEmpty() {
		t.Errorf("Cell(4, 1) = %v, want empty", g.Cell(4, 1))
	}
	if g.Cell(4, 3).Kind() != KindText {
		t.Errorf("explicit Text value should not be coerced, got %v", g.Cell(4, 3).Kind())
	}

	_, err = FromRows([][]any{{struct{}{}}})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("FromRows(struct) error = %v, want INVALID_INPUT", err)
	}
}

func TestCopy(t *testing.T) {
	src := MustFromRows([][]any{{1, 2}, {nil, "a"}})
	dst := Copy(src)
	src.Set(1, 1, Number(99))

	if n, _ := dst.Cell(1, 1).Num(); n != 1 {
		t.Errorf("Copy should not alias the source, got %v", dst.Cell(1, 1))
	}
	if dst.MaxRow() != 2 || dst.MaxCol() != 2 {
		t.Errorf("Copy size = (%d, %d), want (2, 2)", dst.MaxRow(), dst.MaxCol())
	}

	row := dst.Row(2)
	if len(row) != 2 || row[1].Text() != "a" {
		t.Errorf("Row(2) = %v, want [ a]", row)
	}
}

func TestResolve(t *testing.T) {
	g := MustFromRows([][]any{
		{"x", 12.5},
		{"=B1", "=$B$1", "=SUM(B1:B2)", "=ZZZ"},
	})

	tests := []struct {
		col  int
		want string
	}{
		{1, "12.5"},
		{2, "12.5"},
		{3, "=SUM(B1:B2)"},
		{4, "=ZZZ"},
	}
	for _, tt := range tests {
		if got := At(g, 2, tt.col).Text(); got != tt.want {
			t.Errorf("At(2, %d) = %q, want %q", tt.col, got, tt.want)
		}
	}

	if r, c, ok := Reference(Text("=C4")); !ok || r != 4 || c != 3 {
		t.Errorf("Reference(=C4) = (%d, %d, %v), want (4, 3, true)", r, c, ok)
	}
	if _, _, ok := Reference(Number(1)); ok {
		t.Error("Reference(number) should not be a reference")
	}
}
