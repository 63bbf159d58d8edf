package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Linear is a piecewise-linear interpolant over strictly increasing knots.
// Outside the knots it holds the end values.
type Linear struct {
	pl interp.PiecewiseLinear
}

// NewLinear fits a piecewise-linear interpolant to (xs, ys).
func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interpolate: %d knots, %d values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("interpolate on %d knots: %w", len(xs), ErrTooFewPoints)
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("interpolate: knots not strictly increasing at %d", i)
		}
	}

	l := &Linear{}
	if err := l.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return l, nil
}

// At evaluates the interpolant at x.
func (l *Linear) At(x float64) float64 {
	return l.pl.Predict(x)
}

// AtAll evaluates the interpolant at every x.
func (l *Linear) AtAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = l.At(x)
	}
	return ys
}
