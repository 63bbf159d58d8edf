package flatten

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/events"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/numeric"
)

// IntervalMarker turns pairs of clicks into fitted intervals and draws each
// fit on the surface.
type IntervalMarker struct {
	Fitter Fitter
	Log    logrus.FieldLogger

	axis    []float64
	data    []float64
	surface events.Surface

	clicks    []int
	intervals []Interval
	locked    bool
}

// NewIntervalMarker marks intervals of an ascending axis with quadratic
// fits.
func NewIntervalMarker(axis, data []float64, surface events.Surface) *IntervalMarker {
	return &IntervalMarker{
		Fitter:  PolyFitter{Order: 2},
		Log:     logrus.StandardLogger(),
		axis:    axis,
		data:    data,
		surface: surface,
	}
}

func (m *IntervalMarker) OnClick(c events.Click) {
	if m.locked || len(m.axis) == 0 {
		return
	}

	m.clicks = append(m.clicks, numeric.BinarySearch(m.axis, c.X))
	m.surface.VLine(c.X, c.Y*0.8, c.Y*1.2)
	if len(m.clicks) < 2 {
		return
	}

	sort.Ints(m.clicks)
	left, right := m.clicks[0], m.clicks[1]
	m.clicks = m.clicks[:0]

	log := m.Log.WithFields(logrus.Fields{"left": left, "right": right})

	iv := Interval{Left: left, Right: right}
	for _, other := range m.intervals {
		if iv.Overlaps(other) {
			log.WithFields(logrus.Fields{
				"otherLeft":  other.Left,
				"otherRight": other.Right,
			}).Warn("interval overlaps an earlier one, ignored")
			return
		}
	}

	fit, err := m.Fitter.Fit(m.axis[left:right], m.data[left:right])
	if err != nil {
		log.WithError(err).Warn("interval not fitted")
		return
	}
	iv.Fit = fit

	m.surface.Curve(m.axis[left:right], fit)
	m.intervals = append(m.intervals, iv)
	log.Debug("interval fitted")
}

// Intervals returns the fitted intervals in click order.
func (m *IntervalMarker) Intervals() []Interval {
	return append([]Interval(nil), m.intervals...)
}

// Clear forgets every interval and pending click and accepts clicks again.
func (m *IntervalMarker) Clear() {
	m.clicks = m.clicks[:0]
	m.intervals = nil
	m.locked = false
}

// Lock makes the marker ignore clicks until Clear.
func (m *IntervalMarker) Lock() {
	m.locked = true
}

// DipFiller alternates between stitching the marked intervals into a
// baseline and starting over.
type DipFiller struct {
	Log logrus.FieldLogger

	marker  *IntervalMarker
	axis    []float64
	surface events.Surface

	stitched bool
	result   *Baseline
}

func NewDipFiller(marker *IntervalMarker, axis []float64, surface events.Surface) *DipFiller {
	return &DipFiller{
		Log:     logrus.StandardLogger(),
		marker:  marker,
		axis:    axis,
		surface: surface,
	}
}

func (f *DipFiller) OnClick(events.Click) {
	if f.stitched {
		f.marker.Clear()
		f.surface.Reset()
		f.stitched = false
		f.result = nil
		f.Log.Debug("baseline discarded, marking again")
		return
	}

	intervals := f.marker.Intervals()
	if len(intervals) < 2 {
		f.Log.WithField("intervals", len(intervals)).Info("mark at least two intervals before stitching")
		return
	}

	b, err := Stitch(f.axis, intervals)
	if err != nil {
		f.Log.WithError(err).Warn("baseline not stitched")
		return
	}
	for _, dip := range b.Dips {
		f.surface.Curve(f.axis[dip.Left:dip.Right], dip.Fit)
	}

	f.marker.Lock()
	f.stitched = true
	f.result = &b
	f.Log.WithFields(logrus.Fields{
		"intervals": len(b.Intervals),
		"dips":      len(b.Dips),
		"points":    len(b.Axis),
	}).Info("baseline stitched")
}

// Result returns the stitched baseline, if the last press stitched one.
func (f *DipFiller) Result() (Baseline, bool) {
	if f.result == nil {
		return Baseline{}, false
	}
	return *f.result, true
}
