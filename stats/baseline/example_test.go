package baseline_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-mep/stats/baseline"
)

func ExampleCalculate() {
	signal := []float64{1, -1, 2, -2, 40, 55}
	times := []float64{-0.005, -0.004, -0.003, -0.002, 0.010, 0.011}

	s := baseline.Calculate(signal, times, -0.001)

	fmt.Printf("samples = %d\n", s.Length)
	fmt.Printf("mean    = %.3f\n", s.Mean)
	fmt.Printf("sd      = %.3f\n", s.SD)
	fmt.Printf("peak    = %.1f\n", s.PeakAbs)

	// Output:
	// samples = 4
	// mean    = 1.500
	// sd      = 0.577
	// peak    = 2.0
}

func ExampleDominantFrequency() {
	const sampleRate = 5000.0

	// Half a second of baseline contaminated by 50 Hz line noise.
	n := 2500
	signal := make([]float64, n)
	times := make([]float64, n)

	for i := range signal {
		times[i] = -0.5 + float64(i)/sampleRate
		signal[i] = 0.8 * math.Sin(2*math.Pi*50*times[i])
	}

	hz := baseline.DominantFrequency(signal, times, -0.001, sampleRate)
	fmt.Printf("dominant frequency = %.0f Hz\n", hz)

	// Output:
	// dominant frequency = 50 Hz
}
