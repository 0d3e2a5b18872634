// Package chart provides named design charts backed by interpolation.
//
// A [Curve] is a digitized 1-D chart (for example the AGMA size factor
// against module); a [Surface] is a 2-D chart (for example the shaft
// shoulder stress-concentration factor against tensile strength and notch
// ratio). Charts come from three places:
//
//   - TOML or YAML catalog files ([LoadTOML], [LoadYAML], [LoadFile])
//   - tables inside a worksheet grid ([CurveFromTable], [SurfaceFromTable])
//   - the catalog compiled into the library ([Builtin])
//
// Evaluating a chart with At clamps at the chart edges and, when given a
// non-nil [trace.Trace], records the lookup as a step:
//
//	cat, _ := chart.Builtin()
//	ks, _ := cat.Curve("agma.Ks")
//	v, _ := ks.At(8, tr) // 1.15
package chart

import (
	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/interp"
	"github.com/matzehuels/melib/pkg/trace"
)

// Curve is a named 1-D chart.
type Curve struct {
	Name        string    `toml:"name" yaml:"name"`
	Description string    `toml:"description" yaml:"description"`
	XLabel      string    `toml:"x_label" yaml:"x_label"`
	YLabel      string    `toml:"y_label" yaml:"y_label"`
	X           []float64 `toml:"x" yaml:"x"`
	Y           []float64 `toml:"y" yaml:"y"`

	lin *interp.Linear
}

// Compile validates the breakpoints and builds the interpolator. Changing X
// or Y afterwards requires another Compile.
func (c *Curve) Compile() error {
	lin, err := interp.NewLinear(c.X, c.Y)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidBreakpoints, err, "curve %q", c.Name)
	}
	c.lin = lin
	return nil
}

// At evaluates the curve at x and records the step in tr. An uncompiled
// curve is compiled first.
func (c *Curve) At(x float64, tr *trace.Trace) (float64, error) {
	if c.lin == nil {
		if err := c.Compile(); err != nil {
			return 0, err
		}
	}
	v := c.lin.Eval(x)
	tr.Record(trace.Step{
		Op:     c.Name,
		Inputs: []trace.Arg{trace.A(argName(c.XLabel, "x"), x)},
		Result: v,
	})
	return v, nil
}

// Interpolator returns the compiled interpolator.
func (c *Curve) Interpolator() (*interp.Linear, error) {
	if c.lin == nil {
		if err := c.Compile(); err != nil {
			return nil, err
		}
	}
	return c.lin, nil
}

// Surface is a named 2-D chart. Z holds one row per Y value and one column
// per X value.
type Surface struct {
	Name        string      `toml:"name" yaml:"name"`
	Description string      `toml:"description" yaml:"description"`
	XLabel      string      `toml:"x_label" yaml:"x_label"`
	YLabel      string      `toml:"y_label" yaml:"y_label"`
	X           []float64   `toml:"x" yaml:"x"`
	Y           []float64   `toml:"y" yaml:"y"`
	Z           [][]float64 `toml:"z" yaml:"z"`

	bi *interp.BiLinear
}

// Compile validates the axes and matrix and builds the interpolator.
func (s *Surface) Compile() error {
	bi, err := interp.NewBiLinear(s.X, s.Y, s.Z)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidBreakpoints, err, "surface %q", s.Name)
	}
	s.bi = bi
	return nil
}

// At evaluates the surface at (x, y) and records the step in tr.
func (s *Surface) At(x, y float64, tr *trace.Trace) (float64, error) {
	if s.bi == nil {
		if err := s.Compile(); err != nil {
			return 0, err
		}
	}
	v := s.bi.Eval(x, y)
	tr.Record(trace.Step{
		Op: s.Name,
		Inputs: []trace.Arg{
			trace.A(argName(s.XLabel, "x"), x),
			trace.A(argName(s.YLabel, "y"), y),
		},
		Result: v,
	})
	return v, nil
}

// Interpolator returns the compiled interpolator.
func (s *Surface) Interpolator() (*interp.BiLinear, error) {
	if s.bi == nil {
		if err := s.Compile(); err != nil {
			return nil, err
		}
	}
	return s.bi, nil
}

func argName(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
