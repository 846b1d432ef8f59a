// Package movavg provides causal and zero-phase moving-average filters.
//
// The causal filter is the direct FIR form
//
//	y[n] = (1/w) * sum_{k=0}^{w-1} x[n-k]
//
// with implicit zeros before the first sample, so the output has the
// same length as the input and the leading edge ramps up from the
// zero-padded head. NaN samples pass through the convolution like any
// other value and contaminate exactly the w outputs whose window
// contains them.
//
// The zero-phase variant applies the causal filter twice, once forward
// and once on the reversed sequence, which cancels the group delay of a
// single pass:
//
//	smoothed, err := movavg.ZeroPhase(envelope, 3)
//
// A single causal pass or a centered average is not equivalent: both
// shift features of the input in time, which matters when the filtered
// sequence is used to locate events such as deflection onsets.
package movavg
