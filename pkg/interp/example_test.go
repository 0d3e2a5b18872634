package interp_test

import (
	"fmt"

	"github.com/matzehuels/melib/pkg/interp"
)

func ExampleLinear() {
	// Size factor Ks against diametral pitch.
	ks, err := interp.NewLinear(
		[]float64{5, 6, 8, 12, 20},
		[]float64{1.0, 1.05, 1.15, 1.25, 1.40},
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(ks.Eval(8))
	fmt.Println(ks.Eval(3))
	fmt.Println(ks.Eval(25))
	fmt.Println(ks.EvalAll([]float64{5, 20}))
	// Output:
	// 1.15
	// 1
	// 1.4
	// [1 1.4]
}

func ExampleInterpolate2D() {
	v, err := interp.Interpolate2D(
		[]float64{0, 10},
		[]float64{0, 1},
		[][]float64{{1, 2}, {3, 5}},
		5, 0.5,
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 2.75
}
