package flatten

import (
	"fmt"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/numeric"
)

// Fitter models the baseline over one interval.
type Fitter interface {
	Fit(x, y []float64) ([]float64, error)
}

// PolyFitter fits a least-squares polynomial.
type PolyFitter struct {
	Order int
}

func (f PolyFitter) Fit(x, y []float64) ([]float64, error) {
	p, err := numeric.PolyFit(x, y, f.Order)
	if err != nil {
		return nil, err
	}
	return p.EvalAll(x), nil
}

// SavGolFitter smooths the interval with a Savitzky-Golay filter whose
// window spans about half the interval.
type SavGolFitter struct {
	Order int
}

func (f SavGolFitter) Fit(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("savgol: %d abscissae, %d ordinates", len(x), len(y))
	}
	window := len(y)/4*2 + 1
	return numeric.SavitzkyGolay(y, window, f.Order, 0, 1)
}

// NewFitter returns the fitter called name: "poly" or "savgol".
func NewFitter(name string, order int) (Fitter, error) {
	switch name {
	case "", "poly":
		return PolyFitter{Order: order}, nil
	case "savgol":
		return SavGolFitter{Order: order}, nil
	}
	return nil, fmt.Errorf("unknown fitter %q", name)
}
