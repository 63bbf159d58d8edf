package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/config"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/crest"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/numeric"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/plotting"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/runlog"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/textio"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/ui"
)

var crestsCmd = &cobra.Command{
	Use:   "crests [temporal] [crests]",
	Short: "Plot a temporal trace with its crests marked",
	Long: `Plots a temporal trace, one sample per line, and marks its interferogram
crests with red dots. Crest indices come from the crests file, or are detected
when --detect is given or the crests file does not exist. Without arguments
temporal.txt and crests.txt are read from --dir.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		temporal := filepath.Join(cfg.TemporalDir, "temporal.txt")
		crests := filepath.Join(cfg.TemporalDir, "crests.txt")
		if len(args) > 0 {
			temporal = args[0]
		}
		if len(args) > 1 {
			crests = args[1]
		}
		ui.Main(func() error {
			return runCrests(temporal, crests)
		})
		return nil
	},
}

func init() {
	d := config.Default()
	flags := crestsCmd.Flags()

	flags.String("dir", d.TemporalDir, "folder holding temporal.txt and crests.txt")
	flags.Bool("detect", false, "detect crests instead of reading them")
	flags.Float64("rep-rate", d.RepetitionRate, "repetition-rate difference of the combs in Hz")
	flags.Int("left-threshold", d.LeftThreshold, "smallest index a detected crest may have")
	flags.Float64("vertical-threshold", d.VerticalThreshold, "smallest |amplitude| of a detected crest")

	bind(flags, map[string]string{
		"temporal_dir":       "dir",
		"detect":             "detect",
		"rep_rate":           "rep-rate",
		"left_threshold":     "left-threshold",
		"vertical_threshold": "vertical-threshold",
	})

	rootCmd.AddCommand(crestsCmd)
}

func runCrests(temporalPath, crestsPath string) error {
	fmt.Println("plotting...")

	trace, err := textio.ReadColumn(temporalPath)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("%s: no samples", temporalPath)
	}

	log := logrus.WithFields(logrus.Fields{"file": temporalPath, "samples": len(trace)})

	indices, source, err := crestIndices(trace, crestsPath, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"crests": len(indices), "source": source}).Info("crests ready")

	fig := plotting.NewFigure("temporal", "sample", "amplitude")
	fig.AddSeries("", numeric.Linspace(0, float64(len(trace)-1), len(trace)), trace)
	xs, ys := crest.Markers(trace, indices)
	for i := range xs {
		fig.Dot(xs[i], ys[i])
	}

	rl := runlog.New()
	rl.Addf("trace: %s\n", temporalPath)
	rl.Addf("crests: %d from %s\n", len(indices), source)

	return present("spectro crests", rl, named{"temporal", fig})
}

// crestIndices reads the crest file, or detects the crests when asked to
// or when there is no file.
func crestIndices(trace []float64, path string, log logrus.FieldLogger) ([]int, string, error) {
	if !cfg.Detect {
		values, err := textio.ReadColumn(path)
		switch {
		case err == nil:
			indices, err := crest.Indices(values, len(trace))
			if err != nil {
				return nil, "", fmt.Errorf("%s: %w", path, err)
			}
			return indices, path, nil
		case errors.Is(err, fs.ErrNotExist):
			log.WithField("crests", path).Info("no crest file, detecting crests")
		default:
			return nil, "", err
		}
	}

	finder := crest.Finder{
		RepetitionRate:    cfg.RepetitionRate,
		SampleRate:        cfg.SampleRate,
		LeftThreshold:     cfg.LeftThreshold,
		VerticalThreshold: cfg.VerticalThreshold,
	}
	log.WithField("period", finder.Period()).Debug("detecting crests")
	return finder.Find(trace), "detection", nil
}
