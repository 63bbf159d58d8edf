package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/calibrate"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/config"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/events"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/plotting"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/prompt"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/runlog"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/textio"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/ui"
)

var wavelengths [2]float64

var calibrateCmd = &cobra.Command{
	Use:   "calibrate [file]",
	Short: "Map the RF axis of a spectrum onto wavelength",
	Long: `Shows the spectrum on its RF axis. Middle-click on both sides of a comb
line to pick it; pick two lines of known wavelength. The wavelength axis is
saved next to the spectrum as <name>[WavelengthAxis].txt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		}
		ui.Main(func() error {
			return runCalibrate(prompt.Stdio(), path, wavelengths)
		})
		return nil
	},
}

func init() {
	d := config.Default()
	flags := calibrateCmd.Flags()

	flags.Float64Var(&wavelengths[0], "wl1", 0, "wavelength of the first picked peak in nm (asked when unset)")
	flags.Float64Var(&wavelengths[1], "wl2", 0, "wavelength of the second picked peak in nm (asked when unset)")
	flags.Bool("refine", false, "fit a Lorentzian to each picked dip")
	flags.Float64("xmin", d.DisplayMin, "lower bound of the wavelength plot in nm")
	flags.Float64("xmax", d.DisplayMax, "upper bound of the wavelength plot in nm")

	bind(flags, map[string]string{
		"refine":      "refine",
		"display_min": "xmin",
		"display_max": "xmax",
	})

	rootCmd.AddCommand(calibrateCmd)
}

func runCalibrate(in *prompt.Prompter, path string, wl [2]float64) error {
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
	if len(data) < 2 {
		return fmt.Errorf("%s: %d samples, need at least 2", path, len(data))
	}
	axis := calibrate.FrequencyAxis(len(data), cfg.SampleRate)

	log := logrus.WithFields(logrus.Fields{"file": path, "samples": len(data)})
	log.Debug("spectrum loaded")

	peaks, err := pickPeaks(axis, data, log)
	if err != nil {
		return err
	}

	for i := range wl {
		if wl[i] > 0 {
			continue
		}
		wl[i], err = in.Float(fmt.Sprintf("Wavelength of peak %d/nm:\n", i+1))
		if err != nil {
			return err
		}
	}

	cal, err := calibrate.Solve(peaks, wl)
	if err != nil {
		return err
	}

	rl := runlog.New()
	rl.Addf("spectrum: %s\n", path)
	rl.Addf("peak 1: %g Hz at %g nm\n", peaks[0], wl[0])
	rl.Addf("peak 2: %g Hz at %g nm\n", peaks[1], wl[1])
	rl.Addf("rf coefficient: %g\n", cal.Times)
	rl.Addf("ceo: %g\n", cal.CEO)

	wlAxis := cal.WavelengthAxis(axis)
	out := textio.SiblingPath(path, "WavelengthAxis")
	if err := textio.WriteColumn(out, wlAxis); err != nil {
		return fmt.Errorf("save wavelength axis: %w", err)
	}
	rl.Addf("\nwavelength axis saved as\n\t%s\n", out)

	rf := plotting.NewFigure("rf", "RF frequency/Hz", "amplitude")
	rf.AddSeries("", axis, data)

	wlFig := plotting.NewFigure("wl", "wavelength/nm", "amplitude")
	wlFig.AddSeries("", wlAxis, data)
	wlFig.SetXRange(cfg.DisplayMin, cfg.DisplayMax)

	return present("spectro calibrate", rl, named{"rf", rf}, named{"wavelength", wlFig})
}

// pickPeaks reopens the picking window until two peaks are picked.
func pickPeaks(axis, data []float64, log logrus.FieldLogger) ([2]float64, error) {
	fmt.Println("Middle-click on both sides of a comb line to pick it. Pick 2 peaks.")

	for {
		fig := plotting.NewFigure("Middle-click both sides of 2 comb lines", "RF frequency/Hz", "amplitude")
		fig.AddSeries("", axis, data)

		picker := calibrate.NewPeakPicker(axis, data, fig)
		picker.Log = log
		if cfg.Refine {
			picker.Refine = calibrate.RefineDip
		}

		d := events.NewDispatcher()
		d.On(events.Middle, picker)

		res, err := ui.Show("spectro calibrate", fig, d)
		if err != nil {
			return [2]float64{}, err
		}
		if res.Quit {
			return [2]float64{}, ErrAborted
		}
		if peaks, ok := picker.Peaks(); ok {
			log.WithField("bins", picker.Indices()).Debug("peaks picked")
			return peaks, nil
		}

		log.WithField("picked", len(picker.Indices())).Info("window closed before 2 peaks were picked, reopening")
	}
}
