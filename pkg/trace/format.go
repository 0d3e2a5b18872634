package trace

import (
	"fmt"
	"math"
	"strings"
)

// Eng formats x scaled by a fixed power of ten p with d decimals, for
// example Eng(2.07e11, 9, 0) is "207 x 10^9". Values of magnitude at most 1
// use a negative exponent: Eng(0.0032, 3, 1) is "3.2 x 10^-3".
func Eng(x float64, p, d int) string {
	scale := math.Pow(10, float64(p))
	if math.Abs(x) > 1 {
		return fmt.Sprintf("%.*f x 10^%d", d, x/scale, p)
	}
	return fmt.Sprintf("%.*f x 10^-%d", d, x*scale, p)
}

// Join formats each element of xs with format and joins them with ", ".
// An empty format means "%.3f".
func Join(xs []float64, format string) string {
	if format == "" {
		format = "%.3f"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf(format, x)
	}
	return strings.Join(parts, ", ")
}
