package calibrate

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/events"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/events/eventstest"
)

func TestFrequencyAxis(t *testing.T) {
	axis := FrequencyAxis(4, 100)

	require.Len(t, axis, 4)
	assert.InDelta(t, 50.0/7, axis[0], 1e-12)
	assert.InDelta(t, 50, axis[3], 1e-12)
	assert.InDelta(t, 100.0/7, axis[1]-axis[0], 1e-12)

	assert.Nil(t, FrequencyAxis(0, 100))
}

func TestSolveMapsEachPeakToItsWavelength(t *testing.T) {
	peaks := [2]float64{12e6, 31e6}
	cal, err := Solve(peaks, [2]float64{1530, 1552.5})
	require.NoError(t, err)

	assert.InDelta(t, 1530, cal.Wavelength(peaks[0]), 1e-9)
	assert.InDelta(t, 1552.5, cal.Wavelength(peaks[1]), 1e-9)

	wl := cal.WavelengthAxis([]float64{peaks[1], peaks[0]})
	assert.InDelta(t, 1552.5, wl[0], 1e-9)
	assert.InDelta(t, 1530, wl[1], 1e-9)
}

func TestSolveOpticalFrequency(t *testing.T) {
	cal, err := Solve([2]float64{1e6, 2e6}, [2]float64{1500, 1600})
	require.NoError(t, err)

	assert.InEpsilon(t, SpeedOfLight/1500e-9, cal.Optical(1e6), 1e-12)
	assert.Less(t, cal.Times, 0.0, "longer wavelength at higher RF frequency")
}

func TestSolveErrors(t *testing.T) {
	_, err := Solve([2]float64{5e6, 5e6}, [2]float64{1530, 1550})
	assert.ErrorIs(t, err, ErrDegeneratePeaks)

	_, err = Solve([2]float64{1e6, 5e6}, [2]float64{0, 1550})
	assert.ErrorIs(t, err, ErrBadWavelength)

	_, err = Solve([2]float64{1e6, 5e6}, [2]float64{1530, -1})
	assert.ErrorIs(t, err, ErrBadWavelength)
}

func combSpectrum(n int, dips ...int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = 1
	}
	for _, d := range dips {
		data[d-1] = 0.6
		data[d] = 0.2
		data[d+1] = 0.6
	}
	return data
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	return l
}

func TestPeakPicker(t *testing.T) {
	axis := FrequencyAxis(200, 100e6)
	data := combSpectrum(200, 50, 140)
	surface := &eventstest.Recorder{}
	out := &bytes.Buffer{}

	p := NewPeakPicker(axis, data, surface)
	p.Out = out
	p.Log = quietLogger()

	p.OnClick(events.Click{X: axis[40], Y: 2, Button: events.Middle})
	assert.Equal(t, [][3]float64{{axis[40], 1.6, 2.4}}, surface.VLines)
	assert.Empty(t, surface.Dots)

	p.OnClick(events.Click{X: axis[60] + 0.2*(axis[1]-axis[0]), Y: 1})
	require.Len(t, surface.Dots, 1)
	assert.Equal(t, [2]float64{axis[50], 0.2}, surface.Dots[0])
	assert.Contains(t, out.String(), "1 more peak")
	assert.False(t, p.Done())
	assert.False(t, surface.Closed)

	// Bracket clicked right to left.
	p.OnClick(events.Click{X: axis[150], Y: 1})
	p.OnClick(events.Click{X: axis[130], Y: 1})
	require.True(t, p.Done())
	assert.True(t, surface.Closed)

	peaks, ok := p.Peaks()
	require.True(t, ok)
	assert.Equal(t, [2]float64{axis[50], axis[140]}, peaks)
	assert.Equal(t, []int{50, 140}, p.Indices())

	p.OnClick(events.Click{X: axis[10], Y: 1})
	assert.Len(t, surface.VLines, 4, "clicks after both peaks are ignored")
}

func TestPeakPickerClampsClicksOutsideAxis(t *testing.T) {
	axis := FrequencyAxis(50, 100e6)
	data := combSpectrum(50, 2)
	surface := &eventstest.Recorder{}

	p := NewPeakPicker(axis, data, surface)
	p.Out = &bytes.Buffer{}
	p.Log = quietLogger()

	p.OnClick(events.Click{X: -1e9, Y: 1})
	p.OnClick(events.Click{X: axis[5], Y: 1})

	assert.Equal(t, []int{2}, p.Indices())
	_, ok := p.Peaks()
	assert.False(t, ok)
}

func TestPeakPickerRefine(t *testing.T) {
	axis := FrequencyAxis(100, 100e6)
	data := combSpectrum(100, 30, 70)

	p := NewPeakPicker(axis, data, &eventstest.Recorder{})
	p.Out = &bytes.Buffer{}
	p.Log = quietLogger()
	p.Refine = func(axis, data []float64, index int) float64 { return axis[index] + 1 }

	p.OnClick(events.Click{X: axis[25]})
	p.OnClick(events.Click{X: axis[35]})

	assert.Equal(t, []int{30}, p.Indices())
	assert.Equal(t, axis[30]+1, p.peaks[0])
}
