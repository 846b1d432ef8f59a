package onset

// Defaults for the fixed pipeline constants. They are fields on Config
// so they can be adjusted without code changes, but the documented
// literal values preserve the reference behavior.
const (
	defaultPersistenceWindowSec  = 2e-3
	defaultBaselineUpperBoundSec = -1e-3
	defaultLateCutoffMs          = 50.0
	defaultFirstSampleAbsGate    = 2.0
	defaultMaxWiggleSkips        = 5
	defaultSmoothingWindowSec    = 0.5e-3
)

// Config holds onset detection parameters. The zero value of every
// pipeline-constant field selects its documented default; the
// caller-facing fields (SampleRate, bounds, multiplier, cutoff, gate)
// have no defaults and describe the recording at hand.
type Config struct {
	// SampleRate is the sampling rate in Hz. Required.
	SampleRate float64

	// OnsetBoundMin is the earliest admissible onset time in seconds.
	// Samples earlier than this are blanked (set to zero) before
	// detection, suppressing the stimulation artifact.
	OnsetBoundMin float64

	// OnsetBoundMax is the latest admissible onset time in seconds.
	// Reserved; the current pipeline bounds late onsets through
	// LateCutoffMs instead.
	OnsetBoundMax float64

	// ThresholdSDMultiplier scales the baseline noise SD into the
	// detection threshold.
	ThresholdSDMultiplier float64

	// WiggleCutoffPercent is the relative-amplitude cutoff (percent of
	// the global peak) below which a leading deflection is skipped as a
	// wiggle. A non-finite value disables wiggle skipping entirely.
	WiggleCutoffPercent float64

	// FirstSampleGate is the largest admissible absolute amplitude of
	// the first non-zero sample after blanking, in signal units.
	FirstSampleGate float64

	// PersistenceWindow is the minimum excursion duration in seconds.
	// Default 2 ms.
	PersistenceWindow float64

	// BaselineUpperBound is the end of the pre-stimulus noise window in
	// seconds. Default -1 ms.
	BaselineUpperBound float64

	// LateCutoffMs rejects onsets at or beyond this latency in
	// milliseconds. Default 50.
	LateCutoffMs float64

	// FirstSampleAbsGate is the fixed absolute gate on the first
	// non-zero sample after blanking, in signal units. Default 2.
	FirstSampleAbsGate float64

	// MaxWiggleSkips bounds the wiggle-skipping loop. Default 5.
	MaxWiggleSkips int

	// SmoothingWindow is the traceback envelope smoothing window in
	// seconds. Default 0.5 ms.
	SmoothingWindow float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.PersistenceWindow <= 0 {
		cfg.PersistenceWindow = defaultPersistenceWindowSec
	}

	if cfg.BaselineUpperBound == 0 {
		cfg.BaselineUpperBound = defaultBaselineUpperBoundSec
	}

	if cfg.LateCutoffMs <= 0 {
		cfg.LateCutoffMs = defaultLateCutoffMs
	}

	if cfg.FirstSampleAbsGate <= 0 {
		cfg.FirstSampleAbsGate = defaultFirstSampleAbsGate
	}

	if cfg.MaxWiggleSkips <= 0 {
		cfg.MaxWiggleSkips = defaultMaxWiggleSkips
	}

	if cfg.SmoothingWindow <= 0 {
		cfg.SmoothingWindow = defaultSmoothingWindowSec
	}

	return cfg
}
