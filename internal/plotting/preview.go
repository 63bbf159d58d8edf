package plotting

import (
	"fmt"

	"github.com/Arafatk/glot"
)

// Preview opens a persistent gnuplot window with the figure's lines. It
// needs gnuplot on the PATH.
func Preview(f *Figure) error {
	dimensions := 2
	persist := true
	debug := false
	plot, err := glot.NewPlot(dimensions, persist, debug)
	if err != nil {
		return fmt.Errorf("gnuplot: %w", err)
	}

	if err := plot.SetTitle(f.Title); err != nil {
		return err
	}
	if err := plot.SetXLabel(f.XLabel); err != nil {
		return err
	}
	if err := plot.SetYLabel(f.YLabel); err != nil {
		return err
	}

	for i, s := range f.Series() {
		label := s.Label
		if label == "" {
			label = fmt.Sprintf("series %d", i+1)
		}
		n := min(len(s.X), len(s.Y))
		if err := plot.AddPointGroup(label, "lines", [][]float64{s.X[:n], s.Y[:n]}); err != nil {
			return fmt.Errorf("gnuplot %s: %w", label, err)
		}
	}
	return nil
}
