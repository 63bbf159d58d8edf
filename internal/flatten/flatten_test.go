package flatten

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/events"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/events/eventstest"
)

func ramp(n int) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i)
	}
	return axis
}

func constant(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestStitchFillsDipLinearly(t *testing.T) {
	axis := ramp(20)
	intervals := []Interval{
		{Left: 10, Right: 14, Fit: constant(4, 3)},
		{Left: 2, Right: 6, Fit: constant(4, 1)},
	}

	b, err := Stitch(axis, intervals)
	require.NoError(t, err)

	require.Len(t, b.Dips, 1)
	assert.Equal(t, 6, b.Dips[0].Left)
	assert.Equal(t, 10, b.Dips[0].Right)

	assert.Equal(t, ramp(14)[2:], b.Axis)
	want := []float64{1, 1, 1, 1, 1.4, 1.8, 2.2, 2.6, 3, 3, 3, 3}
	require.Len(t, b.Values, len(want))
	for i := range want {
		assert.InDelta(t, want[i], b.Values[i], 1e-12, "index %d", i)
	}
	assert.Equal(t, 2, b.Intervals[0].Left, "intervals come back sorted")
}

func TestStitchAdjacentIntervalsHaveNoDip(t *testing.T) {
	axis := ramp(10)
	b, err := Stitch(axis, []Interval{
		{Left: 0, Right: 3, Fit: constant(3, 1)},
		{Left: 3, Right: 6, Fit: constant(3, 2)},
	})
	require.NoError(t, err)

	assert.Empty(t, b.Dips)
	assert.Equal(t, []float64{1, 1, 1, 2, 2, 2}, b.Values)
}

func TestStitchRejectsOverlap(t *testing.T) {
	_, err := Stitch(ramp(10), []Interval{
		{Left: 0, Right: 5, Fit: constant(5, 1)},
		{Left: 4, Right: 8, Fit: constant(4, 1)},
	})
	assert.ErrorIs(t, err, ErrOverlap)
}

func TestOrient(t *testing.T) {
	axis, data := Orient([]float64{3, 2, 1}, []float64{30, 20, 10})
	assert.Equal(t, []float64{1, 2, 3}, axis)
	assert.Equal(t, []float64{10, 20, 30}, data)

	in := []float64{1, 2}
	axis, _ = Orient(in, []float64{5, 6})
	assert.Equal(t, in, axis)
}

func TestCrop(t *testing.T) {
	axis := []float64{1500, 1510, 1520, 1530, 1540, 1550, 1560, 1570}
	data := ramp(len(axis))

	a, d := Crop(axis, data, 1520, 1565)
	assert.Equal(t, []float64{1520, 1530, 1540, 1550, 1560}, a)
	assert.Equal(t, []float64{2, 3, 4, 5, 6}, d)

	a, d = Crop(axis, data, 1600, 1700)
	assert.Empty(t, a)
	assert.Empty(t, d)
}

func TestNewFitter(t *testing.T) {
	f, err := NewFitter("savgol", 1)
	require.NoError(t, err)
	assert.IsType(t, SavGolFitter{}, f)

	f, err = NewFitter("", 2)
	require.NoError(t, err)
	assert.Equal(t, PolyFitter{Order: 2}, f)

	_, err = NewFitter("spline", 2)
	assert.Error(t, err)
}

func TestSavGolFitterFollowsLine(t *testing.T) {
	x := ramp(40)
	y := make([]float64, len(x))
	for i := range y {
		y[i] = 2*x[i] + 1
	}

	fit, err := SavGolFitter{Order: 1}.Fit(x, y)
	require.NoError(t, err)
	for i := 10; i < 30; i++ {
		assert.InDelta(t, y[i], fit[i], 1e-9)
	}
}

func quiet() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	return l
}

func baselineSpectrum(n int) ([]float64, []float64) {
	axis := make([]float64, n)
	data := make([]float64, n)
	for i := range axis {
		axis[i] = 1520 + 0.5*float64(i)
		base := 2 + 0.001*(float64(i)-50)*(float64(i)-50)
		data[i] = base
		if i >= 45 && i < 55 {
			data[i] = 0.5 * base
		}
	}
	return axis, data
}

func middle(axis []float64, i int) events.Click {
	return events.Click{X: axis[i], Y: 1, Button: events.Middle}
}

func TestIntervalMarkerFitsClickedPairs(t *testing.T) {
	axis, data := baselineSpectrum(100)
	surface := &eventstest.Recorder{}
	m := NewIntervalMarker(axis, data, surface)
	m.Log = quiet()

	m.OnClick(middle(axis, 30))
	m.OnClick(middle(axis, 5))

	require.Len(t, m.Intervals(), 1)
	iv := m.Intervals()[0]
	assert.Equal(t, 5, iv.Left)
	assert.Equal(t, 30, iv.Right)
	for i, v := range iv.Fit {
		assert.InDelta(t, data[5+i], v, 1e-9)
	}
	require.Len(t, surface.Curves, 1)
	assert.Equal(t, axis[5:30], surface.Curves[0].Xs)
	assert.Len(t, surface.VLines, 2)
}

func TestIntervalMarkerRejectsOverlapAndShortIntervals(t *testing.T) {
	axis, data := baselineSpectrum(100)
	m := NewIntervalMarker(axis, data, &eventstest.Recorder{})
	m.Log = quiet()

	m.OnClick(middle(axis, 5))
	m.OnClick(middle(axis, 30))
	m.OnClick(middle(axis, 20))
	m.OnClick(middle(axis, 40))
	m.OnClick(middle(axis, 60))
	m.OnClick(middle(axis, 61))

	assert.Len(t, m.Intervals(), 1)
}

func TestDipFillerToggles(t *testing.T) {
	axis, data := baselineSpectrum(100)
	surface := &eventstest.Recorder{}
	m := NewIntervalMarker(axis, data, surface)
	m.Log = quiet()
	f := NewDipFiller(m, axis, surface)
	f.Log = quiet()

	d := events.NewDispatcher()
	d.On(events.Middle, m)
	d.On(events.Right, f)
	right := events.Click{Button: events.Right}

	d.Dispatch(middle(axis, 5))
	d.Dispatch(middle(axis, 35))
	d.Dispatch(right)
	_, ok := f.Result()
	assert.False(t, ok, "one interval cannot be stitched")

	d.Dispatch(middle(axis, 65))
	d.Dispatch(middle(axis, 95))
	d.Dispatch(right)

	b, ok := f.Result()
	require.True(t, ok)
	assert.Equal(t, axis[5:95], b.Axis)
	require.Len(t, b.Dips, 1)
	assert.Len(t, surface.Curves, 3)

	flat := Flatten(axis, data, b)
	require.Len(t, flat, 90)
	for i := 0; i < 30; i++ {
		assert.InDelta(t, 1, flat[i], 1e-9)
		assert.InDelta(t, 1, flat[60+i], 1e-9)
	}
	assert.Less(t, flat[45], 0.6, "absorption survives flattening")

	d.Dispatch(middle(axis, 40))
	d.Dispatch(middle(axis, 50))
	assert.Len(t, m.Intervals(), 2, "marker is locked while stitched")

	d.Dispatch(right)
	_, ok = f.Result()
	assert.False(t, ok)
	assert.Empty(t, m.Intervals())
	assert.Equal(t, 1, surface.Resets)

	d.Dispatch(middle(axis, 10))
	d.Dispatch(middle(axis, 20))
	assert.Len(t, m.Intervals(), 1, "marking resumes after restart")
}
