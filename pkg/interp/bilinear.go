package interp

import (
	"math"

	"github.com/matzehuels/melib/pkg/errors"
)

// BiLinear is a 2-D bilinear interpolator over a rectangular surface.
//
// The x axis runs along the columns of z and the y axis along its rows, so
// z[j][i] is the value at (xs[i], ys[j]). This matches the way charts are
// tabulated in a worksheet: one header row of x values and one labelled row
// per y value.
type BiLinear struct {
	xs []float64
	ys []float64
	z  [][]float64
}

// NewBiLinear builds a surface interpolator. Inputs are copied. Both axes
// must be strictly increasing and z must hold len(ys) rows of len(xs)
// values; otherwise it fails with INVALID_BREAKPOINTS.
func NewBiLinear(xs, ys []float64, z [][]float64) (*BiLinear, error) {
	if err := ValidateSurface(xs, ys, z); err != nil {
		return nil, err
	}
	zc := make([][]float64, len(z))
	for j, row := range z {
		zc[j] = append([]float64(nil), row...)
	}
	return &BiLinear{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		z:  zc,
	}, nil
}

// Eval returns the interpolated value at (x, y). Each axis clamps
// independently. NaN on either axis gives NaN.
func (b *BiLinear) Eval(x, y float64) float64 {
	i0, i1, tx := bracket(b.xs, x)
	j0, j1, ty := bracket(b.ys, y)
	if i0 < 0 || j0 < 0 {
		return math.NaN()
	}
	lo := lerp(b.z[j0][i0], b.z[j0][i1], tx)
	hi := lerp(b.z[j1][i0], b.z[j1][i1], tx)
	return lerp(lo, hi, ty)
}

// EvalAll evaluates the points (xs[k], ys[k]) in order. If out is given and
// large enough, its first buffer receives the results.
//
// xs and ys must have the same length. A mismatch is a programmer error, not
// a data error, and EvalAll panics on it as grid.MustFromRows does;
// validate query slices from external data before calling.
func (b *BiLinear) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(xs) != len(ys) {
		panic("interp: BiLinear.EvalAll called with mismatched lengths")
	}
	res := outBuffer(len(xs), out)
	for k := range xs {
		res[k] = b.Eval(xs[k], ys[k])
	}
	return res
}

// Section returns the 1-D curve z(x) at a fixed y.
func (b *BiLinear) Section(y float64) *Linear {
	ys := make([]float64, len(b.xs))
	for i, x := range b.xs {
		ys[i] = b.Eval(x, y)
	}
	return &Linear{xs: append([]float64(nil), b.xs...), ys: ys}
}

// Axes returns copies of the x and y breakpoints.
func (b *BiLinear) Axes() (xs, ys []float64) {
	return append([]float64(nil), b.xs...), append([]float64(nil), b.ys...)
}

// Interpolate evaluates the series (xs, ys) at x without keeping an
// interpolator around.
func Interpolate(xs, ys []float64, x float64) (float64, error) {
	l, err := NewLinear(xs, ys)
	if err != nil {
		return 0, err
	}
	return l.Eval(x), nil
}

// InterpolateAll evaluates the series (xs, ys) at every query, preserving
// order and length.
func InterpolateAll(xs, ys, queries []float64) ([]float64, error) {
	l, err := NewLinear(xs, ys)
	if err != nil {
		return nil, err
	}
	return l.EvalAll(queries), nil
}

// Interpolate2D evaluates the surface (xs, ys, z) at (x, y).
func Interpolate2D(xs, ys []float64, z [][]float64, x, y float64) (float64, error) {
	b, err := NewBiLinear(xs, ys, z)
	if err != nil {
		return 0, err
	}
	return b.Eval(x, y), nil
}

// Inverse reads the series backwards: it returns the x at which the curve
// reaches y. The values ys must themselves be strictly increasing, otherwise
// the inverse is not a function and INVALID_BREAKPOINTS is returned.
func Inverse(xs, ys []float64, y float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, errors.New(errors.ErrCodeInvalidBreakpoints,
			"y has %d values for %d breakpoints", len(ys), len(xs))
	}
	l, err := NewLinear(ys, xs)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidBreakpoints, err, "series is not invertible")
	}
	return l.Eval(y), nil
}
