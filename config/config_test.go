package config_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sublevel/arsample"
	"github.com/katalvlaran/sublevel/config"
	"github.com/katalvlaran/sublevel/diagram"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestLoad_Defaults checks the built-in layer.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, diagram.DefaultNoiseThreshold, cfg.NoiseThreshold)
	assert.True(t, cfg.CanonicalPoint)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.ARConfig{Noise: 1, BurnIn: 100, Mode: "positive"}, cfg.AR)
	assert.Equal(t, arsample.Positive, cfg.Mode())
}

// TestLoad_FileAndEnv checks that the file overrides defaults and env overrides the file.
func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, "sublevel.yaml", `
noise_threshold: 0.25
canonical_point: false
format: yaml
ar:
  mode: both
  burn_in: 7
`)
	t.Setenv("SUBLEVEL_AR_BURN_IN", "11")
	t.Setenv("SUBLEVEL_LOG_LEVEL", "debug")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.NoiseThreshold)
	assert.False(t, cfg.CanonicalPoint)
	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, arsample.Both, cfg.Mode())
	assert.Equal(t, 11, cfg.AR.BurnIn)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

// TestLoad_TOML covers a second file format.
func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "sublevel.toml", "workers = 3\n[ar]\nnoise = 0.5\noscillatory = true\n")
	cfg, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 0.5, cfg.AR.Noise)
	assert.True(t, cfg.AR.Oscillatory)
}

// TestLoad_Errors covers missing files and invalid values.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	for name, body := range map[string]string{
		"threshold": "noise_threshold: -1\n",
		"workers":   "workers: 0\n",
		"level":     "log_level: loud\n",
		"format":    "format: xml\n",
		"noise":     "ar:\n  noise: -2\n",
		"burnin":    "ar:\n  burn_in: -1\n",
		"mode":      "ar:\n  mode: sideways\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(nil, writeFile(t, "c.yaml", body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestConfig_Options checks the option mapping.
func TestConfig_Options(t *testing.T) {
	cfg := &config.Config{NoiseThreshold: 0.5, CanonicalPoint: false}
	o := diagram.NewOptions(cfg.DiagramOptions()...)
	assert.Equal(t, 0.5, o.NoiseThreshold)
	assert.False(t, o.CanonicalPoint)

	cfg.AR = config.ARConfig{Noise: 0, BurnIn: 0}
	xs, err := arsample.Synthesize(arsample.Coeffs{Phi1: 0.2}, 3, rand.New(rand.NewSource(1)), cfg.SynthOptions()...)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, xs)
}
