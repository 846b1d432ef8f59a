// Package onset detects the onset latency of a motor evoked potential
// (MEP) in a noisy time-series waveform.
//
// The detector blanks samples before the allowed detection window,
// scales a detection threshold from the pre-stimulus noise floor, and
// accepts the earliest threshold excursion that persists for a minimum
// duration. The accepted crossing is then refined: a backward traceback
// over a zero-phase smoothed envelope walks to the start of the rising
// deflection, and small leading wiggles are skipped when they are tiny
// relative to the global peak. Three validity gates reject stimulation
// artifacts and late responses.
//
// One call, one waveform:
//
//	res, err := onset.Detect(signal, times, onset.Config{
//	    SampleRate:            5000,
//	    OnsetBoundMin:         0,
//	    ThresholdSDMultiplier: 4,
//	    WiggleCutoffPercent:   2,
//	    FirstSampleGate:       20,
//	})
//	if err != nil {
//	    // structural misuse: empty input, length mismatch, bad rate
//	}
//	if res.Valid {
//	    fmt.Printf("onset at %.2f ms\n", res.LatencyMs)
//	}
//
// Every algorithmic failure mode (no persistent excursion, onset too
// close to the end of the record, a failed validity gate, ...) yields
// LatencyMs == NaN and Valid == false, never an error; Result.Failure
// tells the causes apart for diagnostics.
package onset
