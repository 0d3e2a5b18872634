package chart_test

import (
	"fmt"

	"github.com/matzehuels/melib/pkg/chart"
	"github.com/matzehuels/melib/pkg/trace"
)

func ExampleCurve_At() {
	cat, err := chart.Builtin()
	if err != nil {
		panic(err)
	}
	sizeFactor, err := cat.Curve("agma.Ks")
	if err != nil {
		panic(err)
	}

	tr := trace.New()
	ks, err := sizeFactor.At(8, tr)
	if err != nil {
		panic(err)
	}
	fmt.Println(ks, tr)
	// Output: 1.15 agma.Ks(module [mm]=8) = 1.15
}
