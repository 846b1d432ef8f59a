package onset

// FailureReason identifies which pipeline stage rejected the waveform.
// The caller contract is only Valid vs. sentinel; the reason is a
// diagnostic extra.
type FailureReason int

// Failure reasons, in pipeline order.
const (
	FailureNone FailureReason = iota

	// FailureAllBlanked: no sample survives blanking; the record is
	// zero everywhere.
	FailureAllBlanked

	// FailureNoPersistentExcursion: no threshold crossing stays above
	// threshold for the persistence window. Also reached when the
	// baseline window is empty (NaN threshold exceeds every sample).
	FailureNoPersistentExcursion

	// FailureTooCloseToEnd: the refined onset is within one
	// persistence window of the end of the record.
	FailureTooCloseToEnd

	// FailureFirstSampleGate: the first non-zero sample after blanking
	// is not strictly below FirstSampleGate.
	FailureFirstSampleGate

	// FailureLateOnset: the onset latency is not strictly below
	// LateCutoffMs.
	FailureLateOnset

	// FailureFirstSampleAbsGate: the first non-zero sample after
	// blanking is not strictly below the fixed absolute gate.
	FailureFirstSampleAbsGate
)

// String returns a short description of the failure reason.
func (r FailureReason) String() string {
	switch r {
	case FailureNone:
		return "none"
	case FailureAllBlanked:
		return "no samples survive blanking"
	case FailureNoPersistentExcursion:
		return "no persistent threshold excursion"
	case FailureTooCloseToEnd:
		return "onset too close to end of record"
	case FailureFirstSampleGate:
		return "first sample above amplitude gate"
	case FailureLateOnset:
		return "onset beyond late-response cutoff"
	case FailureFirstSampleAbsGate:
		return "first sample above absolute gate"
	default:
		return "unknown"
	}
}

// Result holds onset detection results. LatencyMs is NaN and Valid is
// false when no valid onset exists; the index fields are only
// meaningful when the corresponding Has* flag or Valid is set.
type Result struct {
	// LatencyMs is the onset latency in milliseconds, NaN when no
	// valid onset was found.
	LatencyMs float64

	// Valid reports whether LatencyMs holds a finite onset latency.
	Valid bool

	// Failure identifies the rejecting stage when Valid is false.
	Failure FailureReason

	// OnsetIndex is the refined onset sample index. Only meaningful
	// when Valid.
	OnsetIndex int

	// CandidateIndex is the accepted threshold-crossing index before
	// traceback and wiggle skipping. Only meaningful when
	// HasCandidate.
	CandidateIndex int
	HasCandidate   bool

	// FirstNonZero is the index of the first non-zero sample after
	// blanking. Only meaningful when HasFirstNonZero.
	FirstNonZero    int
	HasFirstNonZero bool

	// BaselineSD is the pre-stimulus noise scale; NaN when the
	// baseline window is empty.
	BaselineSD float64

	// Threshold is the absolute detection threshold
	// (ThresholdSDMultiplier x BaselineSD).
	Threshold float64
}
