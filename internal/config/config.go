// Package config gathers the tools' settings from flags, SPECTRO_*
// environment variables and an optional spectro.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every tunable of the three tools.
type Config struct {
	// SampleRate of the digitizer in Sa/s; sets the RF axis.
	SampleRate float64 `mapstructure:"sample_rate"`
	// DisplayMin and DisplayMax bound the wavelength plot in nm.
	DisplayMin float64 `mapstructure:"display_min"`
	DisplayMax float64 `mapstructure:"display_max"`
	// CropMin and CropMax bound the spectrum that is flattened, in nm.
	CropMin float64 `mapstructure:"crop_min"`
	CropMax float64 `mapstructure:"crop_max"`

	FitOrder int    `mapstructure:"fit_order"`
	Fitter   string `mapstructure:"fitter"`
	Refine   bool   `mapstructure:"refine"`

	TemporalDir       string  `mapstructure:"temporal_dir"`
	Detect            bool    `mapstructure:"detect"`
	RepetitionRate    float64 `mapstructure:"rep_rate"`
	LeftThreshold     int     `mapstructure:"left_threshold"`
	VerticalThreshold float64 `mapstructure:"vertical_threshold"`

	PlotDir   string `mapstructure:"plot_dir"`
	SavePlots bool   `mapstructure:"save_plots"`
	Gnuplot   bool   `mapstructure:"gnuplot"`
	Note      string `mapstructure:"note"`
	Verbose   bool   `mapstructure:"verbose"`
}

// Default is the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		SampleRate:        100e6,
		DisplayMin:        1500,
		DisplayMax:        1560,
		CropMin:           1520,
		CropMax:           1565,
		FitOrder:          2,
		Fitter:            "poly",
		TemporalDir:       "temporal",
		RepetitionRate:    1000,
		LeftThreshold:     0,
		VerticalThreshold: 0,
		PlotDir:           "plots",
	}
}

// SetDefaults registers Default with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("sample_rate", d.SampleRate)
	v.SetDefault("display_min", d.DisplayMin)
	v.SetDefault("display_max", d.DisplayMax)
	v.SetDefault("crop_min", d.CropMin)
	v.SetDefault("crop_max", d.CropMax)
	v.SetDefault("fit_order", d.FitOrder)
	v.SetDefault("fitter", d.Fitter)
	v.SetDefault("refine", d.Refine)
	v.SetDefault("temporal_dir", d.TemporalDir)
	v.SetDefault("detect", d.Detect)
	v.SetDefault("rep_rate", d.RepetitionRate)
	v.SetDefault("left_threshold", d.LeftThreshold)
	v.SetDefault("vertical_threshold", d.VerticalThreshold)
	v.SetDefault("plot_dir", d.PlotDir)
	v.SetDefault("save_plots", d.SavePlots)
	v.SetDefault("gnuplot", d.Gnuplot)
	v.SetDefault("note", d.Note)
	v.SetDefault("verbose", d.Verbose)
}

// Load reads file, or spectro.yaml from the working directory or
// $HOME/.config/spectro when file is empty, applies the environment and
// returns the validated configuration. A missing spectro.yaml is not an
// error; a missing explicit file is.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("spectro")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/spectro")
	}

	v.SetEnvPrefix("SPECTRO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the tools cannot run with.
func (c Config) Validate() error {
	switch {
	case !(c.SampleRate > 0):
		return fmt.Errorf("sample rate %g must be positive", c.SampleRate)
	case c.DisplayMin >= c.DisplayMax:
		return fmt.Errorf("display range %g..%g is empty", c.DisplayMin, c.DisplayMax)
	case c.CropMin >= c.CropMax:
		return fmt.Errorf("crop range %g..%g is empty", c.CropMin, c.CropMax)
	case c.FitOrder < 0:
		return fmt.Errorf("fit order %d is negative", c.FitOrder)
	case c.Fitter != "poly" && c.Fitter != "savgol":
		return fmt.Errorf("unknown fitter %q, want poly or savgol", c.Fitter)
	case c.RepetitionRate+300 <= 0:
		return fmt.Errorf("repetition rate %g too small", c.RepetitionRate)
	}
	return nil
}
