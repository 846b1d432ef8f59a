package movavg

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by moving-average functions.
var (
	ErrEmptyInput    = errors.New("movavg: empty input")
	ErrInvalidWindow = errors.New("movavg: window must be positive")
)

// Causal applies a causal moving-average filter of the given window
// length and returns a new slice of the same length as x.
func Causal(x []float64, window int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	if window < 1 {
		return nil, ErrInvalidWindow
	}

	out := make([]float64, len(x))
	CausalTo(out, x, window)

	return out, nil
}

// CausalTo applies a causal moving-average filter, writing to a
// pre-allocated destination. dst must have the same length as x.
//
// The divisor is always the full window length; samples before the
// start of x count as zero.
func CausalTo(dst, x []float64, window int) {
	if window < 1 {
		return
	}

	_ = dst[len(x)-1] // bounds check hint

	inv := 1.0 / float64(window)

	for n := range x {
		lo := n - window + 1
		if lo < 0 {
			lo = 0
		}

		dst[n] = vecmath.Sum(x[lo:n+1]) * inv
	}
}

// ZeroPhase applies the causal moving-average filter twice, forward and
// backward, cancelling the group delay of a single pass. Returns a new
// slice of the same length as x.
//
// The construction is: causal pass, reverse, causal pass, reverse.
// Edge samples are averaged over the zero-padded window of whichever
// pass reaches past the sequence boundary.
func ZeroPhase(x []float64, window int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	if window < 1 {
		return nil, ErrInvalidWindow
	}

	buf := make([]float64, len(x))
	CausalTo(buf, x, window)
	ReverseInPlace(buf)

	out := make([]float64, len(x))
	CausalTo(out, buf, window)
	ReverseInPlace(out)

	return out, nil
}

// Reverse returns a new slice with the samples of x in reverse order.
func Reverse(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}

	return out
}

// ReverseInPlace reverses the samples of x in place.
func ReverseInPlace(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
