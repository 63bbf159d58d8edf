package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/config"
)

// ErrAborted is returned when the user quits a window with Escape or Q.
var ErrAborted = errors.New("aborted")

var (
	cfgFile string

	v   = viper.New()
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "spectro",
	Short: "Interactive dual-comb spectrum tools",
	Long: `Desktop tools for working up dual-comb spectra by hand.

Examples:
  spectro calibrate comb.txt --wl1 1530.2 --wl2 1548.9   # RF axis to wavelength
  spectro flatten comb.txt --fitter savgol               # divide out the baseline
  spectro crests --dir temporal --detect                 # show interferogram crests`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = c

		if cfg.Verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		logrus.WithField("command", cmd.Name()).Debug("configuration loaded")
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	d := config.Default()
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "config file (default spectro.yaml in . or $HOME/.config/spectro)")
	flags.BoolP("verbose", "v", false, "debug logging")
	flags.Float64("sample-rate", d.SampleRate, "digitizer sample rate in Sa/s")
	flags.Bool("save-plots", false, "save figures and log.txt under the plot directory")
	flags.String("plot-dir", d.PlotDir, "root directory for saved figures")
	flags.Bool("gnuplot", false, "also open result figures in gnuplot")
	flags.String("note", "", "appended to the name of the saved-figures folder")

	bind(flags, map[string]string{
		"verbose":     "verbose",
		"sample_rate": "sample-rate",
		"save_plots":  "save-plots",
		"plot_dir":    "plot-dir",
		"gnuplot":     "gnuplot",
		"note":        "note",
	})
}
