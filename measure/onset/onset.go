package onset

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mep/dsp/movavg"
	"github.com/cwbudde/algo-mep/stats/baseline"
)

// Errors returned by Detect for structural misuse. Algorithmic failure
// modes never produce an error; they produce the NaN sentinel.
var (
	ErrEmptySignal       = errors.New("onset: signal is empty")
	ErrLengthMismatch    = errors.New("onset: signal and times differ in length")
	ErrInvalidSampleRate = errors.New("onset: sample rate must be positive")
)

// stableTol is the floating-point tolerance for recognizing a
// persistence-mask average of exactly 1.
const stableTol = 1e-9

// Detector performs onset detection with a fixed configuration.
type Detector struct {
	cfg Config
}

// NewDetector creates an onset detector. Zero-valued pipeline constants
// in cfg are replaced by their documented defaults.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: normalizeConfig(cfg)}
}

// Detect is a one-shot detection with the given configuration.
func Detect(signal, times []float64, cfg Config) (Result, error) {
	return NewDetector(cfg).Detect(signal, times)
}

// Detect locates the MEP onset in one waveform. signal and times are
// paired index-for-index and are not modified.
func (d *Detector) Detect(signal, times []float64) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}

	if len(times) != len(signal) {
		return Result{}, ErrLengthMismatch
	}

	if d.cfg.SampleRate <= 0 {
		return Result{}, ErrInvalidSampleRate
	}

	res := Result{LatencyMs: math.NaN()}

	blanked := blank(signal, times, d.cfg.OnsetBoundMin)

	firstNZ, ok := firstNonZero(blanked)
	if !ok {
		res.Failure = FailureAllBlanked
		return res, nil
	}

	res.FirstNonZero = firstNZ
	res.HasFirstNonZero = true

	// Noise scale from the original, unblanked record. An empty
	// baseline window yields a NaN threshold, which no sample exceeds.
	res.BaselineSD = baseline.NoiseSD(signal, times, d.cfg.BaselineUpperBound)
	res.Threshold = d.cfg.ThresholdSDMultiplier * res.BaselineSD

	persist := int(math.Round(d.cfg.SampleRate * d.cfg.PersistenceWindow))
	if persist < 1 {
		persist = 1
	}

	idx, ok := findPersistentExcursion(blanked, res.Threshold, persist)
	if !ok {
		res.Failure = FailureNoPersistentExcursion
		return res, nil
	}

	res.CandidateIndex = idx
	res.HasCandidate = true

	idx = d.traceback(blanked, idx)
	idx = d.skipWiggles(blanked, idx)

	// Not enough trailing data to trust the detection.
	if idx+persist >= len(blanked) {
		res.Failure = FailureTooCloseToEnd
		return res, nil
	}

	// Validity gates. Comparisons are phrased so a NaN amplitude fails.
	firstAmp := math.Abs(blanked[firstNZ])

	if !(firstAmp < d.cfg.FirstSampleGate) {
		res.Failure = FailureFirstSampleGate
		return res, nil
	}

	latencyMs := times[idx] * 1000

	if !(latencyMs < d.cfg.LateCutoffMs) {
		res.Failure = FailureLateOnset
		return res, nil
	}

	if !(firstAmp < d.cfg.FirstSampleAbsGate) {
		res.Failure = FailureFirstSampleAbsGate
		return res, nil
	}

	res.OnsetIndex = idx
	res.LatencyMs = latencyMs
	res.Valid = true

	return res, nil
}

// blank returns a copy of signal with every sample earlier than tMin
// set to zero.
func blank(signal, times []float64, tMin float64) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)

	for i, t := range times {
		if t < tMin {
			out[i] = 0
		}
	}

	return out
}

// firstNonZero returns the index of the first non-zero sample. NaN
// compares unequal to zero and therefore counts as non-zero; the
// validity gates reject it downstream.
func firstNonZero(y []float64) (int, bool) {
	for i, v := range y {
		if v != 0 {
			return i, true
		}
	}

	return 0, false
}

// findPersistentExcursion returns the earliest threshold crossing that
// is followed, without any threshold dropout, by a stable region where
// the rectified signal stays above threshold for a full persistence
// window.
func findPersistentExcursion(y []float64, threshold float64, persist int) (int, bool) {
	n := len(y)

	above := make([]float64, n)
	for i, v := range y {
		if math.Abs(v) > threshold {
			above[i] = 1
		}
	}

	// Causal moving average of the boolean mask: 1 exactly where every
	// sample in the trailing window is above threshold.
	avg := make([]float64, n)
	movavg.CausalTo(avg, above, persist)

	prev := false

	for i := range n {
		cur := above[i] == 1
		edge := cur && !prev
		prev = cur

		if !edge {
			continue
		}

		// Earliest stable index strictly after the crossing.
		stable := -1

		for k := i + 1; k < n; k++ {
			if avg[k] >= 1-stableTol {
				stable = k
				break
			}
		}

		if stable < 0 {
			continue
		}

		// Accept only when the mask average stays strictly positive
		// between crossing and stable point: a dropout there means the
		// stable run belongs to a later, unrelated excursion.
		sustained := true

		for k := i + 1; k < stable; k++ {
			if !(avg[k] > 0) {
				sustained = false
				break
			}
		}

		if sustained {
			return i, true
		}
	}

	return 0, false
}

// traceback walks backward from the candidate crossing to the start of
// the rising deflection that contains it, using slope-sign transitions
// of the zero-phase smoothed envelope. When no rising transition exists
// before the candidate (a flat record up to the deflection), the
// candidate is kept.
func (d *Detector) traceback(y []float64, candidate int) int {
	n := len(y)
	if n < 4 || candidate <= 0 {
		return candidate
	}

	window := int(math.Round(d.cfg.SampleRate * d.cfg.SmoothingWindow))
	if window < 1 {
		window = 1
	}

	env := make([]float64, n)
	for i, v := range y {
		env[i] = math.Abs(v)
	}

	smoothed, err := movavg.ZeroPhase(env, window)
	if err != nil {
		return candidate
	}

	// Slope sign of the first difference.
	sgn := make([]int, n-1)

	for i := range sgn {
		switch diff := smoothed[i+1] - smoothed[i]; {
		case diff > 0:
			sgn[i] = 1
		case diff < 0:
			sgn[i] = -1
		}
	}

	// The search only looks backward.
	for i := candidate; i < len(sgn); i++ {
		sgn[i] = 0
	}

	// Last point where a falling slope turns into a rising one two
	// slope samples later: the local minimum at the foot of the rise.
	for k := len(sgn) - 3; k >= 0; k-- {
		if sgn[k] == -1 && sgn[k+2] == 1 {
			return k + 1
		}
	}

	return candidate
}

// skipWiggles iteratively advances the onset past leading deflections
// that are tiny relative to the global peak. Disabled by a non-finite
// cutoff; bounded to MaxWiggleSkips iterations.
func (d *Detector) skipWiggles(y []float64, idx int) int {
	cutoff := d.cfg.WiggleCutoffPercent
	if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return idx
	}

	globalMax := vecmath.MaxAbs(y)
	if globalMax == 0 {
		return idx
	}

	for range d.cfg.MaxWiggleSkips {
		next := skipOneWiggle(y, idx, cutoff, globalMax)
		if next == idx {
			break
		}

		idx = next
	}

	return idx
}

// skipOneWiggle advances the onset to the first sign change after
// onset+1 when the deflection up to that point is below the cutoff
// fraction of the global peak.
func skipOneWiggle(y []float64, idx int, cutoff, globalMax float64) int {
	flip := -1

	for k := idx + 2; k < len(y); k++ {
		if signOf(y[k]) != signOf(y[k-1]) {
			flip = k
			break
		}
	}

	if flip < 0 {
		return idx
	}

	// The deflection under test runs up to the flip, exclusive: the
	// flip sample already belongs to the next deflection.
	maxInitial := vecmath.MaxAbs(y[idx:flip])

	if maxInitial/globalMax < cutoff/100 {
		return flip
	}

	return idx
}

func signOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
