package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectro.yaml")
	yaml := "sample_rate: 250000000\ncrop_min: 1510\nfitter: savgol\nfit_order: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	c, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 250e6, c.SampleRate)
	assert.Equal(t, 1510.0, c.CropMin)
	assert.Equal(t, 1565.0, c.CropMax)
	assert.Equal(t, "savgol", c.Fitter)
	assert.Equal(t, 1, c.FitOrder)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("SPECTRO_DISPLAY_MAX", "1600")

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 1600.0, c.DisplayMax)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"sample rate": func(c *Config) { c.SampleRate = 0 },
		"display":     func(c *Config) { c.DisplayMin = 1600 },
		"crop":        func(c *Config) { c.CropMax = c.CropMin },
		"fit order":   func(c *Config) { c.FitOrder = -1 },
		"fitter":      func(c *Config) { c.Fitter = "spline" },
		"rep rate":    func(c *Config) { c.RepetitionRate = -300 },
	} {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
