package crest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pulseTrain(n, period, first int, amp float64) []float64 {
	trace := make([]float64, n)
	for i := range trace {
		trace[i] = 0.01
	}
	sign := 1.0
	for c := first; c < n; c += period {
		trace[c] = sign * amp
		sign = -sign
	}
	return trace
}

func TestFinderFindsAlternatingCrests(t *testing.T) {
	// Period of 1000/(70+300) ≈ 2.7 samples.
	f := Finder{RepetitionRate: 70, SampleRate: 1000, LeftThreshold: 0, VerticalThreshold: 0.5}
	trace := pulseTrain(60, 10, 5, 1)

	assert.Equal(t, []int{5, 15, 25, 35, 45, 55}, f.Find(trace))
}

func TestFinderThresholds(t *testing.T) {
	trace := pulseTrain(60, 10, 5, 1)

	f := Finder{RepetitionRate: 70, SampleRate: 1000, LeftThreshold: 20, VerticalThreshold: 0.5}
	assert.Equal(t, []int{25, 35, 45, 55}, f.Find(trace))

	f = Finder{RepetitionRate: 70, SampleRate: 1000, VerticalThreshold: 2}
	assert.Empty(t, f.Find(trace))
}

func TestIndices(t *testing.T) {
	got, err := Indices([]float64{0, 3, 9}, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 9}, got)

	_, err = Indices([]float64{1.5}, 10)
	assert.Error(t, err)
	_, err = Indices([]float64{10}, 10)
	assert.Error(t, err)
	_, err = Indices([]float64{-1}, 10)
	assert.Error(t, err)
}

func TestMarkers(t *testing.T) {
	xs, ys := Markers([]float64{4, 5, 6}, []int{2, 0, 7})
	assert.Equal(t, []float64{2, 0}, xs)
	assert.Equal(t, []float64{6, 4}, ys)
}
