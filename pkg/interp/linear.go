// Package interp implements piecewise-linear interpolation over breakpoint
// series, in one and two dimensions.
//
// # Overview
//
// Digitized design charts are stored as breakpoints: an increasing sequence
// of independent values and the dependent value read off the chart at each
// one. [Linear] evaluates such a curve; [BiLinear] evaluates a surface given
// as two axes and a matrix (for example a stress-concentration factor as a
// function of tensile strength and notch ratio).
//
// # Edge Policy
//
// Queries outside the breakpoint range clamp: below the first breakpoint the
// first value is returned, above the last the last value. There is no
// extrapolation. A query that lands exactly on a breakpoint returns the
// stored value bit-for-bit. In two dimensions each axis is clamped
// independently.
//
// # Scalars and Vectors
//
// Scalar and vector queries are separate methods (Eval and EvalAll) rather
// than one entry point that inspects its argument. EvalAll keeps the order
// and length of its input and can write into a caller-supplied slice:
//
//	c, _ := interp.NewLinear([]float64{5, 6, 8, 12, 20}, []float64{1.0, 1.05, 1.15, 1.25, 1.40})
//	ks := c.Eval(8)                              // 1.15
//	all := c.EvalAll([]float64{3, 8, 25})        // [1.0 1.15 1.40]
//
// # Concurrency
//
// Interpolators hold no caches and are immutable after construction, so a
// single value may be shared between goroutines.
package interp

import (
	"math"
	"sort"
)

// Linear is a 1-D piecewise-linear interpolator with clamped ends.
type Linear struct {
	xs []float64
	ys []float64
}

// NewLinear builds an interpolator over the breakpoints xs and values ys.
// The slices are copied. It fails with INVALID_BREAKPOINTS when the series is
// empty, the lengths differ, a value is not finite, or xs is not strictly
// increasing.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if err := Validate(xs, ys); err != nil {
		return nil, err
	}
	return &Linear{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}, nil
}

// Eval returns the interpolated value at x. NaN in gives NaN out.
func (l *Linear) Eval(x float64) float64 {
	i0, i1, t := bracket(l.xs, x)
	if i0 < 0 {
		return math.NaN()
	}
	return lerp(l.ys[i0], l.ys[i1], t)
}

// EvalAll evaluates every element of xs in order. If out is supplied and
// large enough, results are written into out[0] and that slice is returned.
func (l *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	res := outBuffer(len(xs), out)
	for i, x := range xs {
		res[i] = l.Eval(x)
	}
	return res
}

// Domain returns the first and last breakpoints.
func (l *Linear) Domain() (lo, hi float64) {
	return l.xs[0], l.xs[len(l.xs)-1]
}

// Breakpoints returns copies of the breakpoints and values.
func (l *Linear) Breakpoints() (xs, ys []float64) {
	return append([]float64(nil), l.xs...), append([]float64(nil), l.ys...)
}

// Len returns the number of breakpoints.
func (l *Linear) Len() int { return len(l.xs) }

// bracket locates x within the axis. It returns the indices of the bracketing
// breakpoints and the fractional distance between them. Clamped and exact
// queries return i0 == i1 and t == 0. NaN returns i0 == -1.
func bracket(axis []float64, x float64) (i0, i1 int, t float64) {
	n := len(axis)
	switch {
	case math.IsNaN(x):
		return -1, -1, 0
	case x <= axis[0]:
		return 0, 0, 0
	case x >= axis[n-1]:
		return n - 1, n - 1, 0
	}
	// axis[0] < x < axis[n-1], so 1 <= i <= n-1.
	i := sort.SearchFloat64s(axis, x)
	if axis[i] == x {
		return i, i, 0
	}
	return i - 1, i, (x - axis[i-1]) / (axis[i] - axis[i-1])
}

// lerp blends a and b; t == 0 returns a exactly.
func lerp(a, b, t float64) float64 {
	if t == 0 {
		return a
	}
	return a + t*(b-a)
}

func outBuffer(n int, out [][]float64) []float64 {
	if len(out) > 0 && cap(out[0]) >= n {
		return out[0][:n]
	}
	return make([]float64, n)
}
