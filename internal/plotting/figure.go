// Package plotting draws the tools' figures with gonum/plot. A Figure is the
// surface the click handlers annotate; it renders to an image for the
// desktop window and to png/svg/pdf files.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Series is a labelled 2-D line.
type Series struct {
	Label string
	X, Y  []float64
}

type mark struct {
	x, y0, y1 float64
}

// Figure is one panel: base series plus the annotations added by clicks.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	series []Series
	xRange *[2]float64

	marks  []mark
	dots   plotter.XYs
	curves []Series

	revision uint64
	closing  bool
}

func NewFigure(title, xlabel, ylabel string) *Figure {
	return &Figure{Title: title, XLabel: xlabel, YLabel: ylabel}
}

// AddSeries adds a base line that survives Reset.
func (f *Figure) AddSeries(label string, xs, ys []float64) {
	f.series = append(f.series, Series{Label: label, X: xs, Y: ys})
	f.revision++
}

// SetXRange fixes the visible x range.
func (f *Figure) SetXRange(lo, hi float64) {
	f.xRange = &[2]float64{lo, hi}
	f.revision++
}

func (f *Figure) VLine(x, y0, y1 float64) {
	f.marks = append(f.marks, mark{x: x, y0: y0, y1: y1})
	f.revision++
}

func (f *Figure) Dot(x, y float64) {
	f.dots = append(f.dots, plotter.XY{X: x, Y: y})
	f.revision++
}

func (f *Figure) Curve(xs, ys []float64) {
	f.curves = append(f.curves, Series{X: xs, Y: ys})
	f.revision++
}

func (f *Figure) Reset() {
	f.marks = nil
	f.dots = nil
	f.curves = nil
	f.revision++
}

func (f *Figure) Close() {
	f.closing = true
}

// CloseRequested reports whether a handler asked for the window to close.
func (f *Figure) CloseRequested() bool {
	return f.closing
}

// Revision changes every time the figure's content does.
func (f *Figure) Revision() uint64 {
	return f.revision
}

// Series returns the base series followed by the fitted curves.
func (f *Figure) Series() []Series {
	all := append([]Series(nil), f.series...)
	for i, c := range f.curves {
		all = append(all, Series{Label: fmt.Sprintf("fit %d", i+1), X: c.X, Y: c.Y})
	}
	return all
}

// Plot builds the gonum plot of the figure.
func (f *Figure) Plot() (*plot.Plot, error) {
	p := PrepPlot(f.Title, f.XLabel, f.YLabel)

	for i, s := range f.series {
		line, err := plotter.NewLine(BuildData(s.X, s.Y))
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = palette(i)
		line.Width = vg.Points(1)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}

	for _, c := range f.curves {
		line, err := plotter.NewLine(BuildData(c.X, c.Y))
		if err != nil {
			return nil, fmt.Errorf("fitted curve: %w", err)
		}
		line.Color = fitColor
		line.Width = vg.Points(2)
		p.Add(line)
	}

	for _, m := range f.marks {
		line, err := plotter.NewLine(plotter.XYs{{X: m.x, Y: m.y0}, {X: m.x, Y: m.y1}})
		if err != nil {
			return nil, fmt.Errorf("marker: %w", err)
		}
		line.Color = markerColor
		line.Width = vg.Points(1.5)
		p.Add(line)
	}

	if len(f.dots) > 0 {
		scatter, err := plotter.NewScatter(f.dots)
		if err != nil {
			return nil, fmt.Errorf("dots: %w", err)
		}
		scatter.GlyphStyle.Color = markerColor
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
	}

	if f.xRange != nil {
		p.X.Min, p.X.Max = f.xRange[0], f.xRange[1]
	}

	return p, nil
}

// Draw draws the figure onto dc and returns the mapping between data and
// canvas coordinates.
func (f *Figure) Draw(dc draw.Canvas) (Transform, error) {
	p, err := f.Plot()
	if err != nil {
		return Transform{}, err
	}
	p.Draw(dc)

	da := p.DataCanvas(dc)
	trX, trY := p.Transforms(&da)
	return Transform{
		xMin: p.X.Min, xMax: p.X.Max,
		yMin: p.Y.Min, yMax: p.Y.Max,
		cxMin: float64(trX(p.X.Min)), cxMax: float64(trX(p.X.Max)),
		cyMin: float64(trY(p.Y.Min)), cyMax: float64(trY(p.Y.Max)),
	}, nil
}
