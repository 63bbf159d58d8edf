// Package crest locates the interferogram crests of a temporal trace and
// prepares them for overlay on the trace.
package crest

import (
	"fmt"
	"math"
)

// Finder detects crests by absolute amplitude. A crest is the largest
// |sample| seen before the trace has run more than one pulse period past it.
type Finder struct {
	// RepetitionRate is the repetition-rate difference of the two combs in Hz.
	RepetitionRate float64
	SampleRate     float64
	// LeftThreshold is the minimum index a crest may sit at.
	LeftThreshold int
	// VerticalThreshold is the minimum |amplitude| of a crest.
	VerticalThreshold float64
}

// Period is the number of samples the finder waits past a maximum before
// accepting it.
func (f Finder) Period() float64 {
	return f.SampleRate / (f.RepetitionRate + 300)
}

// Find returns the crest indices of trace in ascending order.
func (f Finder) Find(trace []float64) []int {
	period := f.Period()

	var crests []int
	maxValue, maxIndex := 0.0, 0
	for i, v := range trace {
		if abs := math.Abs(v); abs > maxValue {
			maxValue = abs
			maxIndex = i
		}

		if float64(i-maxIndex) > period {
			if maxValue > f.VerticalThreshold && maxIndex > f.LeftThreshold {
				crests = append(crests, maxIndex)
			}
			maxValue = 0
			maxIndex = i
		}
	}
	return crests
}

// Indices converts crest positions read from a text file into indices of a
// trace with n samples.
func Indices(values []float64, n int) ([]int, error) {
	indices := make([]int, 0, len(values))
	for i, v := range values {
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("crest %d: %g is not an index", i+1, v)
		}
		if v < 0 || v >= float64(n) {
			return nil, fmt.Errorf("crest %d: index %g outside trace of %d samples", i+1, v, n)
		}
		indices = append(indices, int(v))
	}
	return indices, nil
}

// Markers returns the coordinates of the crests on the trace, with the
// sample index as abscissa.
func Markers(trace []float64, indices []int) (xs, ys []float64) {
	for _, i := range indices {
		if i < 0 || i >= len(trace) {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, trace[i])
	}
	return xs, ys
}
