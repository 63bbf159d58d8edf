// Package flatten divides a spectrum by a baseline the user assembles from
// local fits. Intervals free of absorption features are marked with pairs of
// clicks and fitted one by one; the gaps between neighbouring intervals,
// where the features sit, are bridged by interpolating across both fits.
package flatten

import (
	"errors"
	"fmt"
	"sort"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/numeric"
)

var ErrOverlap = errors.New("intervals overlap")

// Interval is the half-open index range [Left, Right) of an axis together
// with the baseline fitted over it.
type Interval struct {
	Left, Right int
	Fit         []float64
}

// Overlaps reports whether the two index ranges share a sample.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Left < other.Right && other.Left < iv.Right
}

// Baseline is a stitched baseline: fitted intervals and the dips between
// them, in axis order.
type Baseline struct {
	Axis      []float64
	Values    []float64
	Intervals []Interval
	Dips      []Interval
}

// Stitch fills the gap between every pair of neighbouring intervals by
// linear interpolation over the union of the two fits, then concatenates
// intervals and dips into one baseline.
func Stitch(axis []float64, intervals []Interval) (Baseline, error) {
	sorted := append([]Interval(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Left < sorted[j].Left })

	var dips []Interval
	for i := 0; i+1 < len(sorted); i++ {
		cur, next := sorted[i], sorted[i+1]
		if cur.Overlaps(next) {
			return Baseline{}, fmt.Errorf("[%d,%d) and [%d,%d): %w", cur.Left, cur.Right, next.Left, next.Right, ErrOverlap)
		}
		if next.Left == cur.Right {
			continue
		}

		xs := append(append([]float64(nil), axis[cur.Left:cur.Right]...), axis[next.Left:next.Right]...)
		ys := append(append([]float64(nil), cur.Fit...), next.Fit...)
		lin, err := numeric.NewLinear(xs, ys)
		if err != nil {
			return Baseline{}, fmt.Errorf("dip [%d,%d): %w", cur.Right, next.Left, err)
		}

		dips = append(dips, Interval{
			Left:  cur.Right,
			Right: next.Left,
			Fit:   lin.AtAll(axis[cur.Right:next.Left]),
		})
	}

	all := append(append([]Interval(nil), sorted...), dips...)
	sort.Slice(all, func(i, j int) bool { return all[i].Left < all[j].Left })

	b := Baseline{Intervals: sorted, Dips: dips}
	for _, iv := range all {
		b.Axis = append(b.Axis, axis[iv.Left:iv.Right]...)
		b.Values = append(b.Values, iv.Fit...)
	}
	return b, nil
}

// Orient returns copies of axis and data in ascending axis order.
func Orient(axis, data []float64) ([]float64, []float64) {
	a := append([]float64(nil), axis...)
	d := append([]float64(nil), data...)
	if numeric.Descending(a) {
		numeric.Reverse(a)
		numeric.Reverse(d)
	}
	return a, d
}

// Crop keeps the samples with lo <= axis < hi of an ascending axis.
func Crop(axis, data []float64, lo, hi float64) ([]float64, []float64) {
	start := numeric.LowerBound(axis, lo)
	end := max(numeric.LowerBound(axis, hi), start)
	end = min(end, len(data))
	start = min(start, end)
	return axis[start:end], data[start:end]
}

// Flatten divides the spectrum by the baseline over the span the baseline
// covers.
func Flatten(axis, data []float64, b Baseline) []float64 {
	return numeric.Divide(axis, data, b.Axis, b.Values)
}
