// Package calibrate maps the RF frequency bins of a dual-comb spectrum onto
// optical wavelength. Two comb lines of known wavelength are picked on the
// RF axis; the repetition-rate ratio and carrier-envelope offset that relate
// the two axes follow from a straight line through them.
package calibrate

import (
	"errors"
	"fmt"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/numeric"
)

// SpeedOfLight in m/s.
const SpeedOfLight = 299792458.0

var (
	ErrDegeneratePeaks = errors.New("reference peaks sit on the same RF frequency")
	ErrBadWavelength   = errors.New("wavelength must be positive")
)

// FrequencyAxis returns the RF axis of an n-point spectrum sampled at
// sampleRate: the upper half of 2n evenly spaced points spanning -fs/2..fs/2.
func FrequencyAxis(n int, sampleRate float64) []float64 {
	full := numeric.Linspace(-sampleRate/2, sampleRate/2, 2*n)
	if full == nil {
		return nil
	}
	return full[n:]
}

// Calibration is the linear map ν = f·Times + CEO from RF frequency f to
// optical frequency ν, both in Hz.
type Calibration struct {
	Times float64
	CEO   float64
}

// Solve derives the calibration from the RF frequencies of two picked peaks
// and their wavelengths in nm. peaks[i] is paired with wavelengthsNm[i].
func Solve(peaks, wavelengthsNm [2]float64) (Calibration, error) {
	for i, wl := range wavelengthsNm {
		if !(wl > 0) {
			return Calibration{}, fmt.Errorf("peak %d at %g nm: %w", i+1, wl, ErrBadWavelength)
		}
	}
	if peaks[0] == peaks[1] {
		return Calibration{}, fmt.Errorf("both peaks at %g Hz: %w", peaks[0], ErrDegeneratePeaks)
	}

	nu0 := SpeedOfLight / (wavelengthsNm[0] * 1e-9)
	nu1 := SpeedOfLight / (wavelengthsNm[1] * 1e-9)

	times := (nu1 - nu0) / (peaks[1] - peaks[0])
	return Calibration{
		Times: times,
		CEO:   nu0 - times*peaks[0],
	}, nil
}

// Optical returns the optical frequency of RF frequency f.
func (c Calibration) Optical(f float64) float64 {
	return f*c.Times + c.CEO
}

// Wavelength returns the wavelength in nm of RF frequency f.
func (c Calibration) Wavelength(f float64) float64 {
	return SpeedOfLight / c.Optical(f) * 1e9
}

// WavelengthAxis converts every RF frequency of axis.
func (c Calibration) WavelengthAxis(axis []float64) []float64 {
	wl := make([]float64, len(axis))
	for i, f := range axis {
		wl[i] = c.Wavelength(f)
	}
	return wl
}
