// Package trace records how a computed value was derived.
//
// A Trace is created by the caller and handed to the functions whose work it
// should capture. Passing nil turns recording off; every method is safe on a
// nil *Trace. Nothing is kept globally, so two computations never see each
// other's steps.
//
//	tr := trace.New()
//	ks, err := sizeFactor.At(8, tr)
//	if err != nil {
//		return err
//	}
//	fmt.Println(ks, tr)
//	// 1.15 agma.Ks(module [mm]=8) = 1.15
//
// A Trace is not safe for concurrent use.
package trace

import (
	"fmt"
	"strings"
)

// Arg is one named input of a step.
type Arg struct {
	Name  string
	Value float64
}

// A is shorthand for Arg{name, v}.
func A(name string, v float64) Arg { return Arg{Name: name, Value: v} }

// Step is one recorded operation.
type Step struct {
	Op     string
	Inputs []Arg
	Result float64
	Note   string
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op)
	b.WriteByte('(')
	for i, a := range s.Inputs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%g", a.Name, a.Value)
	}
	fmt.Fprintf(&b, ") = %g", s.Result)
	if s.Note != "" {
		b.WriteString("  # ")
		b.WriteString(s.Note)
	}
	return b.String()
}

// Trace is an ordered record of steps.
type Trace struct {
	steps []Step
}

// New returns an empty trace.
func New() *Trace { return &Trace{} }

// Record appends a step. It is a no-op on a nil trace.
func (t *Trace) Record(s Step) {
	if t == nil {
		return
	}
	s.Inputs = append([]Arg(nil), s.Inputs...)
	t.steps = append(t.steps, s)
}

// Steps returns a copy of the recorded steps.
func (t *Trace) Steps() []Step {
	if t == nil {
		return nil
	}
	return append([]Step(nil), t.steps...)
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.steps)
}

// Last returns the most recent step.
func (t *Trace) Last() (Step, bool) {
	if t.Len() == 0 {
		return Step{}, false
	}
	return t.steps[len(t.steps)-1], true
}

// Reset discards all steps.
func (t *Trace) Reset() {
	if t == nil {
		return
	}
	t.steps = t.steps[:0]
}

// String renders one step per line.
func (t *Trace) String() string {
	if t.Len() == 0 {
		return ""
	}
	lines := make([]string, len(t.steps))
	for i, s := range t.steps {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

// Markdown renders the steps as a Markdown table.
func (t *Trace) Markdown() string {
	var b strings.Builder
	b.WriteString("|#|Operation|Inputs|Result|Note|\n")
	b.WriteString("|--:|:---|:---|--:|:---|\n")
	for i, s := range t.Steps() {
		args := make([]string, len(s.Inputs))
		for j, a := range s.Inputs {
			args[j] = fmt.Sprintf("%s = %g", a.Name, a.Value)
		}
		fmt.Fprintf(&b, "|%d|%s|%s|%g|%s|\n", i+1, s.Op, strings.Join(args, ", "), s.Result, s.Note)
	}
	return b.String()
}
