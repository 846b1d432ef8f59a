package movavg_test

import (
	"fmt"

	"github.com/cwbudde/algo-mep/dsp/movavg"
)

func ExampleCausal() {
	x := []float64{0, 0, 4, 4, 4, 0, 0}

	y, err := movavg.Causal(x, 2)
	if err != nil {
		panic(err)
	}

	for _, v := range y {
		fmt.Printf("%.1f ", v)
	}

	fmt.Println()

	// Output:
	// 0.0 0.0 2.0 4.0 4.0 2.0 0.0
}

func ExampleZeroPhase() {
	// A centered impulse stays centered: the forward-backward
	// construction has no group delay.
	x := []float64{0, 0, 0, 9, 0, 0, 0}

	y, err := movavg.ZeroPhase(x, 3)
	if err != nil {
		panic(err)
	}

	for _, v := range y {
		fmt.Printf("%.1f ", v)
	}

	fmt.Println()

	// Output:
	// 0.0 1.0 2.0 3.0 2.0 1.0 0.0
}
