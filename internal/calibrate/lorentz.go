package calibrate

import (
	"math"

	"github.com/maorshutman/lm"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/numeric"
)

// dipHalfWidth is the number of bins either side of a picked minimum that
// take part in the Lorentzian fit.
const dipHalfWidth = 8

// Lorentzian with full width gamma, peak A above offset C at f0.
func Lorentzian(f, A, f0, gamma, C float64) float64 {
	return .25*A*math.Pow(gamma, 2)/(math.Pow(f-f0, 2)+(.25*math.Pow(gamma, 2))) + C
}

// FitLorentzian returns the parameters {A, f0, gamma, C} that best fit
// (x, y), starting from initial.
func FitLorentzian(x, y, initial []float64) ([]float64, error) {
	resFunc := func(dst, params []float64) {
		A, f0, gamma, C := params[0], params[1], params[2], params[3]
		for i := range x {
			dst[i] = Lorentzian(x[i], A, f0, gamma, C) - y[i]
		}
	}

	nj := lm.NumJac{Func: resFunc}

	problem := lm.LMProblem{
		Dim:        4,
		Size:       len(x),
		Func:       resFunc,
		Jac:        nj.Jac,
		InitParams: initial,
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	result, err := lm.LM(problem, &lm.Settings{Iterations: 1000, ObjectiveTol: 1e-16})
	if err != nil {
		return nil, err
	}
	return result.X, nil
}

// RefineDip fits a Lorentzian dip to the bins around index and returns its
// centre frequency. The bin frequency axis[index] is returned when the fit
// fails or its centre leaves the fitted window.
func RefineDip(axis, data []float64, index int) float64 {
	n := min(len(axis), len(data))
	if index < 0 || index >= n {
		return math.NaN()
	}
	fallback := axis[index]
	if n < 2 {
		return fallback
	}

	lo := numeric.Clamp(index-dipHalfWidth, 0, n-1)
	hi := numeric.Clamp(index+dipHalfWidth+1, lo, n)
	if hi-lo < 5 {
		return fallback
	}

	// Fit in bin units around the minimum, with the dip normalized to unit
	// depth, so the numerical Jacobian sees values of order one.
	delta := axis[1] - axis[0]
	base := (data[lo] + data[hi-1]) / 2
	depth := math.Abs(data[index] - base)
	if delta == 0 || depth == 0 {
		return fallback
	}

	var u, y []float64
	for i := lo; i < hi; i++ {
		u = append(u, float64(i-index))
		y = append(y, (data[i]-base)/depth)
	}

	params, err := FitLorentzian(u, y, []float64{-1, 0, 2, 0})
	if err != nil {
		return fallback
	}
	center := params[1]
	if math.IsNaN(center) || math.Abs(center) > dipHalfWidth {
		return fallback
	}

	return fallback + center*delta
}
