package calibrate

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/events"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/numeric"
)

// PeakPicker turns pairs of clicks into reference peaks. Each pair brackets
// a comb line; the minimum of the spectrum between the two clicks is taken
// as the line. After two lines the surface is closed.
type PeakPicker struct {
	// Refine, when set, replaces the bin frequency of a picked minimum.
	Refine func(axis, data []float64, index int) float64
	Out    io.Writer
	Log    logrus.FieldLogger

	axis    []float64
	data    []float64
	surface events.Surface

	clicks  []int
	peaks   []float64
	indices []int
}

func NewPeakPicker(axis, data []float64, surface events.Surface) *PeakPicker {
	return &PeakPicker{
		Out:     os.Stdout,
		Log:     logrus.StandardLogger(),
		axis:    axis,
		data:    data,
		surface: surface,
	}
}

// OnClick records one bracket click.
func (p *PeakPicker) OnClick(c events.Click) {
	if p.Done() || len(p.axis) == 0 {
		return
	}

	index := p.index(c.X)
	p.clicks = append(p.clicks, index)
	p.surface.VLine(c.X, c.Y*0.8, c.Y*1.2)
	if len(p.clicks) < 2 {
		return
	}

	sort.Ints(p.clicks)
	left, right := p.clicks[0], p.clicks[1]
	p.clicks = p.clicks[:0]

	dip := numeric.ArgMin(p.data, left, right)
	freq := p.axis[dip]
	if p.Refine != nil {
		freq = p.Refine(p.axis, p.data, dip)
	}
	p.surface.Dot(p.axis[dip], p.data[dip])
	p.peaks = append(p.peaks, freq)
	p.indices = append(p.indices, dip)

	p.Log.WithFields(logrus.Fields{
		"left":  left,
		"right": right,
		"index": dip,
		"freq":  freq,
	}).Debug("peak picked")

	switch len(p.peaks) {
	case 1:
		fmt.Fprintln(p.Out, "Pick 1 more peak")
	case 2:
		p.surface.Close()
	}
}

// index maps an x coordinate to the nearest bin of the evenly spaced axis.
func (p *PeakPicker) index(x float64) int {
	if len(p.axis) < 2 {
		return 0
	}
	delta := p.axis[1] - p.axis[0]
	i := int(math.Round((x - p.axis[0]) / delta))
	return numeric.Clamp(i, 0, len(p.axis)-1)
}

// Done reports whether both peaks have been picked.
func (p *PeakPicker) Done() bool {
	return len(p.peaks) >= 2
}

// Peaks returns the RF frequencies of the two picked peaks in pick order.
func (p *PeakPicker) Peaks() ([2]float64, bool) {
	if !p.Done() {
		return [2]float64{}, false
	}
	return [2]float64{p.peaks[0], p.peaks[1]}, true
}

// Indices returns the bins of the peaks picked so far.
func (p *PeakPicker) Indices() []int {
	return append([]int(nil), p.indices...)
}
