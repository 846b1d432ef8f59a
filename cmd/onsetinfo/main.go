// Command onsetinfo detects the MEP onset latency in a recorded sweep.
//
// Usage:
//
//	onsetinfo [flags] [file.csv]
//
// The input is a two-column CSV (time in seconds, amplitude) read from
// the given file or from stdin. A non-numeric first line is treated as
// a header and skipped.
//
// Examples:
//
//	onsetinfo -rate 5000 sweep.csv
//	onsetinfo -rate 5000 -sd 4 -wiggle 2 -gate 20 sweep.csv
//	onsetinfo -rate 5000 -verbose < sweep.csv
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-mep/measure/onset"
	"github.com/cwbudde/algo-mep/stats/baseline"
)

func main() {
	rate := flag.Float64("rate", 5000, "sampling rate in Hz")
	tMin := flag.Float64("tmin", 0, "earliest admissible onset time in seconds (blanking bound)")
	tMax := flag.Float64("tmax", 0.06, "latest admissible onset time in seconds (reserved)")
	sd := flag.Float64("sd", 4, "threshold as a multiple of the baseline noise SD")
	wiggle := flag.Float64("wiggle", 2, "wiggle cutoff in percent of the global peak (NaN disables)")
	gate := flag.Float64("gate", 20, "amplitude gate for the first sample after blanking")
	verbose := flag.Bool("verbose", false, "print detection diagnostics")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: onsetinfo [flags] [file.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Detects the MEP onset latency in a two-column (time, amplitude) CSV.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	in := os.Stdin

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "onsetinfo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		in = f
	}

	times, signal, err := readSweep(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onsetinfo: %v\n", err)
		os.Exit(1)
	}

	cfg := onset.Config{
		SampleRate:            *rate,
		OnsetBoundMin:         *tMin,
		OnsetBoundMax:         *tMax,
		ThresholdSDMultiplier: *sd,
		WiggleCutoffPercent:   *wiggle,
		FirstSampleGate:       *gate,
	}

	res, err := onset.Detect(signal, times, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onsetinfo: %v\n", err)
		os.Exit(1)
	}

	if res.Valid {
		fmt.Printf("onset latency: %.3f ms\n", res.LatencyMs)
	} else {
		fmt.Println("no onset")
	}

	if *verbose {
		printDiagnostics(res, signal, times, cfg)
	}

	if !res.Valid {
		os.Exit(1)
	}
}

// readSweep parses "time,amplitude" lines. A non-numeric first line is
// treated as a header.
func readSweep(r io.Reader) (times, signal []float64, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 columns, got %d", lineNo, len(fields))
		}

		t, errT := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)

		if errT != nil || errY != nil {
			if lineNo == 1 {
				continue // header
			}

			return nil, nil, fmt.Errorf("line %d: %q is not numeric", lineNo, line)
		}

		times = append(times, t)
		signal = append(signal, y)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	if len(signal) == 0 {
		return nil, nil, fmt.Errorf("no samples in input")
	}

	return times, signal, nil
}

func printDiagnostics(res onset.Result, signal, times []float64, cfg onset.Config) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "samples\t%d\n", len(signal))
	fmt.Fprintf(w, "baseline SD\t%.4g\n", res.BaselineSD)
	fmt.Fprintf(w, "threshold\t%.4g\n", res.Threshold)

	if hz := baseline.DominantFrequency(signal, times, -1e-3, cfg.SampleRate); !math.IsNaN(hz) {
		fmt.Fprintf(w, "baseline peak freq\t%.1f Hz\n", hz)
	}

	if res.HasFirstNonZero {
		fmt.Fprintf(w, "first non-zero\t%d (t = %.4f s)\n", res.FirstNonZero, times[res.FirstNonZero])
	}

	if res.HasCandidate {
		fmt.Fprintf(w, "candidate index\t%d (t = %.4f s)\n", res.CandidateIndex, times[res.CandidateIndex])
	}

	if res.Valid {
		fmt.Fprintf(w, "onset index\t%d\n", res.OnsetIndex)
	} else {
		fmt.Fprintf(w, "failure\t%s\n", res.Failure)
	}

	w.Flush()
}
