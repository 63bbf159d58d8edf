package plotting

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	markerColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	fitColor    = color.RGBA{R: 191, G: 191, B: 0, A: 255}
)

// PrepPlot returns an empty plot with the house style: sans labels, heavier
// axis lines and the legend in the top right corner.
func PrepPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = 14
	p.Title.Padding = font.Length(8)

	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.Label.Font.Variant = "Sans"

	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.Label.Font.Variant = "Sans"

	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(4)
	p.Legend.ThumbnailWidth = vg.Points(25)

	return p
}

// BuildData zips two columns into plotter points.
func BuildData(xs, ys []float64) plotter.XYs {
	n := min(len(xs), len(ys))
	xy := make(plotter.XYs, n)
	for i := range xy {
		xy[i].X = xs[i]
		xy[i].Y = ys[i]
	}
	return xy
}

func palette(brush int) color.RGBA {
	col := []color.RGBA{
		{R: 31, G: 119, B: 180, A: 255},
		{R: 255, G: 127, B: 14, A: 255},
		{R: 44, G: 160, B: 44, A: 255},
		{R: 148, G: 103, B: 189, A: 255},
		{R: 27, G: 170, B: 139, A: 255},
		{R: 122, G: 90, B: 41, A: 255},
	}
	return col[brush%len(col)]
}
