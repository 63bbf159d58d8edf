package plotting

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Drawer is a figure or a row of figures.
type Drawer interface {
	Draw(dc draw.Canvas) (Transform, error)
	Revision() uint64
}

// Transform maps between data coordinates and canvas coordinates of the
// data area of a drawn plot. Canvas coordinates have their origin at the
// bottom left.
type Transform struct {
	xMin, xMax, yMin, yMax     float64
	cxMin, cxMax, cyMin, cyMax float64

	// height of the rendered image in pixels, for flipping window rows.
	height float64
}

// Valid reports whether the transform came from a drawn data area.
func (t Transform) Valid() bool {
	return t.cxMax != t.cxMin && t.cyMax != t.cyMin
}

// ToData converts a canvas point to data coordinates.
func (t Transform) ToData(cx, cy float64) (x, y float64) {
	x = t.xMin + (cx-t.cxMin)/(t.cxMax-t.cxMin)*(t.xMax-t.xMin)
	y = t.yMin + (cy-t.cyMin)/(t.cyMax-t.cyMin)*(t.yMax-t.yMin)
	return x, y
}

// FromData converts data coordinates to a canvas point.
func (t Transform) FromData(x, y float64) (cx, cy float64) {
	cx = t.cxMin + (x-t.xMin)/(t.xMax-t.xMin)*(t.cxMax-t.cxMin)
	cy = t.cyMin + (y-t.yMin)/(t.yMax-t.yMin)*(t.cyMax-t.cyMin)
	return cx, cy
}

// PixelToData converts a pixel of an image made by Render, counted from
// the top left, to data coordinates.
func (t Transform) PixelToData(px, py float64) (x, y float64) {
	return t.ToData(px, t.height-py)
}

// Render draws d into a w x h pixel image. The canvas runs at 72 dpi so
// one point is one pixel.
func Render(d Drawer, w, h int) (image.Image, Transform, error) {
	if w <= 0 || h <= 0 {
		return nil, Transform{}, fmt.Errorf("render: empty size %dx%d", w, h)
	}

	c := vgimg.NewWith(vgimg.UseWH(vg.Length(w), vg.Length(h)), vgimg.UseDPI(72))
	t, err := d.Draw(draw.New(c))
	if err != nil {
		return nil, Transform{}, err
	}
	t.height = float64(h)

	return c.Image(), t, nil
}

// Row lays figures out side by side.
type Row []*Figure

func (r Row) Draw(dc draw.Canvas) (Transform, error) {
	plots := make([]*plot.Plot, len(r))
	for i, f := range r {
		p, err := f.Plot()
		if err != nil {
			return Transform{}, err
		}
		plots[i] = p
	}

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	return Transform{}, nil
}

func (r Row) Revision() uint64 {
	var rev uint64
	for _, f := range r {
		rev += f.Revision()
	}
	return rev
}
