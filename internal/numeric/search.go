package numeric

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// BinarySearch returns the index of the first element of sorted that is not
// less than key, clamped to a valid index. It returns 0 for an empty slice.
func BinarySearch(sorted []float64, key float64) int {
	if len(sorted) == 0 {
		return 0
	}
	i := LowerBound(sorted, key)
	if i >= len(sorted) {
		return len(sorted) - 1
	}
	return i
}

// LowerBound returns the first index whose element is not less than key,
// or len(sorted) if there is none.
func LowerBound(sorted []float64, key float64) int {
	i, _ := slices.BinarySearch(sorted, key)
	return i
}

// ArgMin returns the index of the first minimum of data[start:end]. Bounds
// are clamped to data; an empty range returns the clamped start.
func ArgMin(data []float64, start, end int) int {
	return argExtreme(data, start, end, func(a, b float64) bool { return a < b })
}

// ArgMax is ArgMin for the maximum.
func ArgMax(data []float64, start, end int) int {
	return argExtreme(data, start, end, func(a, b float64) bool { return a > b })
}

func argExtreme(data []float64, start, end int, better func(a, b float64) bool) int {
	if len(data) == 0 {
		return 0
	}
	start = Clamp(start, 0, len(data)-1)
	end = Clamp(end, start, len(data))
	if start == end {
		return start
	}

	best := start
	for i := start + 1; i < end; i++ {
		if better(data[i], data[best]) {
			best = i
		}
	}
	return best
}

// Clamp limits i to [lo, hi].
func Clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

// Linspace returns n evenly spaced points from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Reverse reverses s in place.
func Reverse(s []float64) {
	slices.Reverse(s)
}

// Descending reports whether the first step of axis goes down.
func Descending(axis []float64) bool {
	return len(axis) > 1 && axis[0] > axis[1]
}

// Divide returns data1/data2 element by element, starting where axis1
// first equals axis2[0] and stopping when either series runs out.
func Divide(axis1, data1, axis2, data2 []float64) []float64 {
	n2 := min(len(axis2), len(data2))
	if n2 == 0 {
		return nil
	}

	var result []float64
	started := false
	i2 := 0
	for i1, a := range axis1 {
		if i2 >= n2 || i1 >= len(data1) {
			break
		}
		if a == axis2[0] {
			started = true
		}
		if started {
			result = append(result, data1[i1]/data2[i2])
			i2++
		}
	}
	return result
}
