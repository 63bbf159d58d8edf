package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/plotting"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/runlog"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/ui"
)

const (
	figureWidth  = 10 * vg.Inch
	figureHeight = 6 * vg.Inch
)

// bind ties config keys to flags so flags override file and environment.
func bind(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(name)))
	}
}

// named is a figure with the file name it is saved under.
type named struct {
	name string
	fig  *plotting.Figure
}

// present saves and previews the result figures as configured, then shows
// them side by side until the window is closed.
func present(title string, rl *runlog.Log, figs ...named) error {
	if cfg.SavePlots {
		dir := runlog.Path(cfg.PlotDir, cfg.Note, time.Now())
		for _, f := range figs {
			if err := plotting.SavePlot(f.fig, dir, f.name, figureWidth, figureHeight); err != nil {
				return err
			}
		}
		if err := rl.Write(dir); err != nil {
			return fmt.Errorf("write log: %w", err)
		}
		fmt.Printf("plots saved in\n\t%s\n", dir)
	}

	if cfg.Gnuplot {
		for _, f := range figs {
			if err := plotting.Preview(f.fig); err != nil {
				logrus.WithError(err).WithField("figure", f.name).Warn("gnuplot preview failed")
			}
		}
	}

	row := make(plotting.Row, len(figs))
	for i, f := range figs {
		row[i] = f.fig
	}
	_, err := ui.Show(title, row, nil)
	return err
}
