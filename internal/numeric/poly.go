package numeric

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrTooFewPoints is returned when a fit has fewer samples than unknowns.
var ErrTooFewPoints = errors.New("too few points for fit")

// Poly is a polynomial in the normalized variable u = (x-Center)/Scale.
// Coeffs[i] multiplies u^i.
type Poly struct {
	Coeffs []float64
	Center float64
	Scale  float64
}

// PolyFit fits a least-squares polynomial of the given order to (x, y).
// The abscissa is centred and scaled before building the Vandermonde matrix
// so that wavelength axes around 1550 stay well conditioned.
func PolyFit(x, y []float64, order int) (Poly, error) {
	if order < 0 {
		return Poly{}, fmt.Errorf("negative polynomial order %d", order)
	}
	if len(x) != len(y) {
		return Poly{}, fmt.Errorf("polyfit: %d abscissae, %d ordinates", len(x), len(y))
	}
	n := len(x)
	if n < order+1 {
		return Poly{}, fmt.Errorf("polyfit order %d on %d points: %w", order, n, ErrTooFewPoints)
	}

	center := floats.Sum(x) / float64(n)
	scale := (floats.Max(x) - floats.Min(x)) / 2
	if scale == 0 {
		scale = 1
	}

	a := mat.NewDense(n, order+1, nil)
	for i, xi := range x {
		u := (xi - center) / scale
		p := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, p)
			p *= u
		}
	}
	b := mat.NewVecDense(n, append([]float64(nil), y...))

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return Poly{}, fmt.Errorf("polyfit: %w", err)
	}

	coeffs := make([]float64, order+1)
	for j := range coeffs {
		coeffs[j] = c.AtVec(j)
	}

	return Poly{Coeffs: coeffs, Center: center, Scale: scale}, nil
}

// Eval evaluates the polynomial at x.
func (p Poly) Eval(x float64) float64 {
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	u := (x - p.Center) / scale

	v := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		v = v*u + p.Coeffs[i]
	}
	return v
}

// EvalAll evaluates the polynomial at every x.
func (p Poly) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Eval(x)
	}
	return ys
}

// SavitzkyGolay smooths y, or returns its deriv-th derivative, with a
// least-squares polynomial of the given order over an odd window centred on
// each sample. The ends are padded by reflecting the signal about its first
// and last values.
func SavitzkyGolay(y []float64, window, order, deriv int, rate float64) ([]float64, error) {
	if window < 1 || window%2 != 1 {
		return nil, fmt.Errorf("savitzky-golay window %d must be a positive odd number", window)
	}
	if order < 0 || window < order+2 {
		return nil, fmt.Errorf("savitzky-golay window %d is too small for order %d", window, order)
	}
	if deriv < 0 || deriv > order {
		return nil, fmt.Errorf("savitzky-golay derivative %d out of range for order %d", deriv, order)
	}
	half := (window - 1) / 2
	n := len(y)
	if n < half+1 {
		return nil, fmt.Errorf("savitzky-golay window %d on %d points: %w", window, n, ErrTooFewPoints)
	}

	b := mat.NewDense(window, order+1, nil)
	for k := -half; k <= half; k++ {
		for i := 0; i <= order; i++ {
			b.Set(k+half, i, math.Pow(float64(k), float64(i)))
		}
	}
	ident := mat.NewDense(window, window, nil)
	for i := 0; i < window; i++ {
		ident.Set(i, i, 1)
	}

	var pinv mat.Dense
	if err := pinv.Solve(b, ident); err != nil {
		return nil, fmt.Errorf("savitzky-golay: %w", err)
	}

	gain := math.Pow(rate, float64(deriv)) * factorial(deriv)
	m := make([]float64, window)
	for i := range m {
		m[i] = pinv.At(deriv, i) * gain
	}

	padded := make([]float64, 0, n+2*half)
	for j := 0; j < half; j++ {
		padded = append(padded, y[0]-math.Abs(y[half-j]-y[0]))
	}
	padded = append(padded, y...)
	for j := 0; j < half; j++ {
		padded = append(padded, y[n-1]+math.Abs(y[n-2-j]-y[n-1]))
	}

	out := make([]float64, n)
	for j := range out {
		out[j] = floats.Dot(m, padded[j:j+window])
	}
	return out, nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
