package trace

import (
	"strings"
	"testing"
)

func TestNilTrace(t *testing.T) {
	var tr *Trace
	tr.Record(Step{Op: "Ks", Result: 1})
	tr.Reset()
	if tr.Len() != 0 || tr.Steps() != nil || tr.String() != "" {
		t.Error("nil trace should record nothing")
	}
	if _, ok := tr.Last(); ok {
		t.Error("Last() on nil trace should be false")
	}
}

func TestRecord(t *testing.T) {
	tr := New()
	in := []Arg{A("x", 8)}
	tr.Record(Step{Op: "Ks", Inputs: in, Result: 1.15})
	tr.Record(Step{Op: "KR", Inputs: []Arg{A("R", 0.99)}, Result: 1, Note: "reliability"})
	in[0].Value = 99

	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	if got := tr.Steps()[0].Inputs[0].Value; got != 8 {
		t.Errorf("recorded input = %v, want 8 (must not alias caller slice)", got)
	}
	last, ok := tr.Last()
	if !ok || last.Op != "KR" {
		t.Errorf("Last() = %v, %v, want KR", last, ok)
	}

	want := "Ks(x=8) = 1.15\nKR(R=0.99) = 1  # reliability"
	if got := tr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	md := tr.Markdown()
	if !strings.Contains(md, "|1|Ks|x = 8|1.15||") {
		t.Errorf("Markdown() missing first step:\n%s", md)
	}

	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", tr.Len())
	}
}

func TestEng(t *testing.T) {
	tests := []struct {
		x    float64
		p, d int
		want string
	}{
		{2.07e11, 9, 0, "207 x 10^9"},
		{1.5e6, 6, 1, "1.5 x 10^6"},
		{0.0032, 3, 1, "3.2 x 10^-3"},
		{1, 2, 0, "100 x 10^-2"},
	}
	for _, tt := range tests {
		if got := Eng(tt.x, tt.p, tt.d); got != tt.want {
			t.Errorf("Eng(%v, %d, %d) = %q, want %q", tt.x, tt.p, tt.d, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]float64{1, 2.5}, ""); got != "1.000, 2.500" {
		t.Errorf("Join() = %q", got)
	}
	if got := Join([]float64{1, 2.5}, "%g"); got != "1, 2.5" {
		t.Errorf("Join(%%g) = %q", got)
	}
	if got := Join(nil, ""); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
}
