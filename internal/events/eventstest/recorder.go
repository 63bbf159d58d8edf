// Package eventstest provides a Surface that records what listeners draw.
package eventstest

// Curve is a recorded yellow curve.
type Curve struct {
	Xs, Ys []float64
}

// Recorder implements events.Surface in memory.
type Recorder struct {
	VLines [][3]float64
	Dots   [][2]float64
	Curves []Curve
	Resets int
	Closed bool
}

func (r *Recorder) VLine(x, y0, y1 float64) {
	r.VLines = append(r.VLines, [3]float64{x, y0, y1})
}

func (r *Recorder) Dot(x, y float64) {
	r.Dots = append(r.Dots, [2]float64{x, y})
}

func (r *Recorder) Curve(xs, ys []float64) {
	r.Curves = append(r.Curves, Curve{Xs: xs, Ys: ys})
}

func (r *Recorder) Reset() {
	r.VLines, r.Dots, r.Curves = nil, nil, nil
	r.Resets++
}

func (r *Recorder) Close() {
	r.Closed = true
}
