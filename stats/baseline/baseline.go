// Package baseline computes noise statistics over the pre-stimulus
// window of an evoked-potential recording.
//
// The window is selected by time, not by index: a sample belongs to the
// baseline when its timestamp is below the given upper bound (typically
// -1 ms, shortly before the stimulus). NaN samples are skipped, and an
// empty window yields NaN statistics so that thresholds derived from
// them degrade to "no detection" rather than a crash.
package baseline

import (
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Stats holds statistics of the rectified pre-stimulus window.
type Stats struct {
	Length  int     // samples in the window, NaN samples excluded
	Mean    float64 // mean of |x|
	SD      float64 // sample standard deviation of |x|
	RMS     float64
	PeakAbs float64
}

// emptyStats returns NaN-valued Stats for an empty window.
func emptyStats() Stats {
	return Stats{
		Mean:    math.NaN(),
		SD:      math.NaN(),
		RMS:     math.NaN(),
		PeakAbs: math.NaN(),
	}
}

// Calculate computes rectified-signal statistics over the samples with
// times[i] < upperBound, in a single pass using Welford's algorithm.
// signal and times are paired index-for-index; NaN samples are skipped.
func Calculate(signal, times []float64, upperBound float64) Stats {
	n := min(len(signal), len(times))

	var (
		count int
		mean  float64
		m2    float64
		sumSq float64
		peak  float64
	)

	for i := range n {
		if !(times[i] < upperBound) {
			continue
		}

		x := math.Abs(signal[i])
		if math.IsNaN(x) {
			continue
		}

		count++

		delta := x - mean
		mean += delta / float64(count)
		m2 += delta * (x - mean)

		sumSq += x * x
		if x > peak {
			peak = x
		}
	}

	if count == 0 {
		return emptyStats()
	}

	sd := 0.0
	if count > 1 {
		sd = math.Sqrt(m2 / float64(count-1))
	}

	return Stats{
		Length:  count,
		Mean:    mean,
		SD:      sd,
		RMS:     math.Sqrt(sumSq / float64(count)),
		PeakAbs: peak,
	}
}

// NoiseSD returns the sample standard deviation of the rectified signal
// over the pre-stimulus window, or NaN when the window is empty.
func NoiseSD(signal, times []float64, upperBound float64) float64 {
	return Calculate(signal, times, upperBound).SD
}

// minWindowSamples is the shortest pre-stimulus window for which a
// spectral estimate is attempted.
const minWindowSamples = 8

// DominantFrequency estimates the dominant frequency (Hz) of the
// pre-stimulus window. It is a quality-control diagnostic: a baseline
// dominated by 50 or 60 Hz indicates line-noise contamination.
//
// The window samples are demeaned, Hann-windowed, zero-padded, and
// transformed; the peak magnitude bin is refined by parabolic
// interpolation. Returns NaN when the window is too short or the
// transform fails.
func DominantFrequency(signal, times []float64, upperBound, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return math.NaN()
	}

	n := min(len(signal), len(times))

	win := make([]float64, 0, n)

	for i := range n {
		if !(times[i] < upperBound) {
			continue
		}

		if math.IsNaN(signal[i]) {
			continue
		}

		win = append(win, signal[i])
	}

	if len(win) < minWindowSamples {
		return math.NaN()
	}

	mean := vecmath.Sum(win) / float64(len(win))

	// Zero-pad well past the window length so the peak bin can be
	// interpolated with sub-bin spacing.
	fftSize := nextPowerOf2(4 * len(win))

	inData := make([]complex128, fftSize)

	for i, v := range win {
		// Hann window suppresses leakage from the window edges.
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(len(win)-1))
		inData[i] = complex((v-mean)*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return math.NaN()
	}

	out := make([]complex128, fftSize)

	if err := plan.Forward(out, inData); err != nil {
		return math.NaN()
	}

	binCount := fftSize/2 + 1

	bestBin := 1
	bestVal := -1.0

	for i := 1; i < binCount; i++ {
		v := cmplx.Abs(out[i])
		if v > bestVal {
			bestVal = v
			bestBin = i
		}
	}

	if bestVal <= 0 {
		return math.NaN()
	}

	delta := 0.0

	if bestBin > 1 && bestBin < binCount-1 {
		a := cmplx.Abs(out[bestBin-1])
		b := bestVal
		c := cmplx.Abs(out[bestBin+1])

		den := a - 2*b + c
		if den != 0 {
			delta = 0.5 * (a - c) / den
		}
	}

	return (float64(bestBin) + delta) * sampleRate / float64(fftSize)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
