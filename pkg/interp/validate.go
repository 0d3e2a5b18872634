package interp

import (
	"math"

	"github.com/matzehuels/melib/pkg/errors"
)

// checkAxis verifies that a breakpoint axis is non-empty, free of NaN and
// strictly increasing.
func checkAxis(name string, xs []float64) error {
	if len(xs) == 0 {
		return errors.New(errors.ErrCodeInvalidBreakpoints, "%s: no breakpoints", name)
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.New(errors.ErrCodeInvalidBreakpoints, "%s[%d] is not finite", name, i)
		}
		if i > 0 && x <= xs[i-1] {
			return errors.New(errors.ErrCodeInvalidBreakpoints,
				"%s not strictly increasing at index %d (%g after %g)", name, i, x, xs[i-1])
		}
	}
	return nil
}

// checkValues verifies that a value series is finite and matches its axis.
func checkValues(name string, ys []float64, want int) error {
	if len(ys) != want {
		return errors.New(errors.ErrCodeInvalidBreakpoints,
			"%s has %d values for %d breakpoints", name, len(ys), want)
	}
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return errors.New(errors.ErrCodeInvalidBreakpoints, "%s[%d] is not finite", name, i)
		}
	}
	return nil
}

// Validate reports whether xs and ys form a usable breakpoint series:
// at least one point, equal lengths, finite values and strictly increasing xs.
// Failures carry INVALID_BREAKPOINTS.
func Validate(xs, ys []float64) error {
	if err := checkAxis("x", xs); err != nil {
		return err
	}
	return checkValues("y", ys, len(xs))
}

// ValidateSurface reports whether xs, ys and z form a usable surface:
// both axes valid and z holding len(ys) rows of len(xs) finite values.
func ValidateSurface(xs, ys []float64, z [][]float64) error {
	if err := checkAxis("x", xs); err != nil {
		return err
	}
	if err := checkAxis("y", ys); err != nil {
		return err
	}
	if len(z) != len(ys) {
		return errors.New(errors.ErrCodeInvalidBreakpoints,
			"z has %d rows for %d y breakpoints", len(z), len(ys))
	}
	for j, row := range z {
		if err := checkValues("z row", row, len(xs)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBreakpoints, err, "row %d", j)
		}
	}
	return nil
}
