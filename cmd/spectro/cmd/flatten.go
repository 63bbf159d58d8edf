package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/config"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/events"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/flatten"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/plotting"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/prompt"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/runlog"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/textio"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/ui"
)

// ErrNoWavelengthAxis is returned when a spectrum has no calibrated axis
// next to it.
var ErrNoWavelengthAxis = errors.New("generate wavelength axis first")

const flattenHelp = `Click the MIDDLE button to set the start or stop of a fitted interval,
Click the RIGHT button to stitch the intervals into a baseline,
Click the RIGHT button again to discard the baseline and mark again,
CLOSE the window to accept the baseline.`

var flattenCmd = &cobra.Command{
	Use:   "flatten [file]",
	Short: "Divide a calibrated spectrum by a hand-fitted baseline",
	Long: `Shows the spectrum against its wavelength axis, read from
<name>[WavelengthAxis].txt. Mark the baseline stretches between absorption
dips, stitch them, and the flattened spectrum is saved as <name>[Flat].txt.

` + flattenHelp,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		}
		ui.Main(func() error {
			return runFlatten(prompt.Stdio(), path)
		})
		return nil
	},
}

func init() {
	d := config.Default()
	flags := flattenCmd.Flags()

	flags.Float64("crop-min", d.CropMin, "shortest wavelength kept, in nm")
	flags.Float64("crop-max", d.CropMax, "longest wavelength kept, in nm")
	flags.Int("order", d.FitOrder, "polynomial order of the interval fits")
	flags.String("fitter", d.Fitter, "interval fitter: poly or savgol")

	bind(flags, map[string]string{
		"crop_min":  "crop-min",
		"crop_max":  "crop-max",
		"fit_order": "order",
		"fitter":    "fitter",
	})

	rootCmd.AddCommand(flattenCmd)
}

func runFlatten(in *prompt.Prompter, path string) error {
	if path == "" {
		p, err := in.Line("Path of the spectrum file:\n\t")
		if err != nil {
			return err
		}
		path = p
	}

	data, err := textio.ReadColumn(path)
	if err != nil {
		return err
	}
	axisPath := textio.SiblingPath(path, "WavelengthAxis")
	axis, err := textio.ReadColumn(axisPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoWavelengthAxis, err)
	}
	if len(axis) != len(data) {
		return fmt.Errorf("%s has %d values but %s has %d", axisPath, len(axis), path, len(data))
	}

	axis, data = flatten.Orient(axis, data)
	axis, data = flatten.Crop(axis, data, cfg.CropMin, cfg.CropMax)
	if len(axis) < 2 {
		return fmt.Errorf("%s: fewer than 2 samples between %g and %g nm", path, cfg.CropMin, cfg.CropMax)
	}

	fitter, err := flatten.NewFitter(cfg.Fitter, cfg.FitOrder)
	if err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{"file": path, "samples": len(axis)})
	log.WithField("fitter", cfg.Fitter).Debug("spectrum cropped")

	fmt.Println(flattenHelp)

	fig := plotting.NewFigure("Middle: mark intervals, Right: stitch or restart", "wavelength/nm", "amplitude")
	fig.AddSeries("", axis, data)

	marker := flatten.NewIntervalMarker(axis, data, fig)
	marker.Fitter = fitter
	marker.Log = log
	filler := flatten.NewDipFiller(marker, axis, fig)
	filler.Log = log

	d := events.NewDispatcher()
	d.On(events.Middle, marker)
	d.On(events.Right, filler)

	res, err := ui.Show("spectro flatten", fig, d)
	if err != nil {
		return err
	}
	if res.Quit {
		return ErrAborted
	}

	baseline, ok := filler.Result()
	if !ok {
		log.Info("no baseline stitched, nothing saved")
		return nil
	}

	flat := flatten.Flatten(axis, data, baseline)
	out := textio.SiblingPath(path, "Flat")
	if err := textio.WriteColumns(out, baseline.Axis, flat); err != nil {
		return fmt.Errorf("save flattened spectrum: %w", err)
	}

	rl := runlog.New()
	rl.Addf("spectrum: %s\n", path)
	rl.Addf("crop: %g..%g nm, %s fit of order %d\n", cfg.CropMin, cfg.CropMax, cfg.Fitter, cfg.FitOrder)
	for _, iv := range baseline.Intervals {
		rl.Addf("interval: %g..%g nm\n", axis[iv.Left], axis[max(iv.Right-1, iv.Left)])
	}
	rl.Addf("\nflattened spectrum saved as\n\t%s\n", out)

	spectrum := plotting.NewFigure("spectrum", "wavelength/nm", "amplitude")
	spectrum.AddSeries("spectrum", axis, data)
	spectrum.AddSeries("baseline", baseline.Axis, baseline.Values)

	flattened := plotting.NewFigure("flattened", "wavelength/nm", "transmission")
	flattened.AddSeries("", baseline.Axis[:len(flat)], flat)

	return present("spectro flatten", rl, named{"spectrum", spectrum}, named{"flattened", flattened})
}
