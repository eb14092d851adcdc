// SPDX-License-Identifier: MIT

// Package config loads layered settings for the sublevel tools.
//
// Precedence, lowest first: built-in defaults, an optional config file
// (YAML, TOML or JSON by extension), SUBLEVEL_* environment variables, and
// whatever flags the caller has bound on the same viper instance. Nested
// keys map to env names with "_" for ".", so ar.burn_in reads
// SUBLEVEL_AR_BURN_IN.
package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sublevel/arsample"
	"github.com/katalvlaran/sublevel/diagram"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "SUBLEVEL"

// Keys.
const (
	KeyNoiseThreshold = "noise_threshold"
	KeyCanonicalPoint = "canonical_point"
	KeyWorkers        = "workers"
	KeyLogLevel       = "log_level"
	KeyFormat         = "format"
	KeyARNoise        = "ar.noise"
	KeyARBurnIn       = "ar.burn_in"
	KeyARMode         = "ar.mode"
	KeyAROscillatory  = "ar.oscillatory"
)

// Output formats accepted under KeyFormat.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration.
type Config struct {
	NoiseThreshold float64  `mapstructure:"noise_threshold" yaml:"noise_threshold" json:"noise_threshold"`
	CanonicalPoint bool     `mapstructure:"canonical_point" yaml:"canonical_point" json:"canonical_point"`
	Workers        int      `mapstructure:"workers" yaml:"workers" json:"workers"`
	LogLevel       string   `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Format         string   `mapstructure:"format" yaml:"format" json:"format"`
	AR             ARConfig `mapstructure:"ar" yaml:"ar" json:"ar"`
}

// ARConfig holds the synthetic-series settings.
type ARConfig struct {
	Noise       float64 `mapstructure:"noise" yaml:"noise" json:"noise"`
	BurnIn      int     `mapstructure:"burn_in" yaml:"burn_in" json:"burn_in"`
	Mode        string  `mapstructure:"mode" yaml:"mode" json:"mode"`
	Oscillatory bool    `mapstructure:"oscillatory" yaml:"oscillatory" json:"oscillatory"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyNoiseThreshold, diagram.DefaultNoiseThreshold)
	v.SetDefault(KeyCanonicalPoint, true)
	v.SetDefault(KeyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyLogLevel, logrus.InfoLevel.String())
	v.SetDefault(KeyFormat, FormatJSON)
	v.SetDefault(KeyARNoise, 1.0)
	v.SetDefault(KeyARBurnIn, 100)
	v.SetDefault(KeyARMode, arsample.Positive.String())
	v.SetDefault(KeyAROscillatory, false)
}

// Load resolves a Config from v. A nil v gets a fresh instance. An empty
// path skips the file layer. The result is validated.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.NoiseThreshold < 0 || math.IsNaN(c.NoiseThreshold) || math.IsInf(c.NoiseThreshold, 0) {
		return fmt.Errorf("%s=%v: %w", KeyNoiseThreshold, c.NoiseThreshold, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%s=%d: %w", KeyWorkers, c.Workers, ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s=%q: %w", KeyLogLevel, c.LogLevel, ErrInvalidConfig)
	}
	switch c.Format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return fmt.Errorf("%s=%q: %w", KeyFormat, c.Format, ErrInvalidConfig)
	}
	if c.AR.Noise < 0 || math.IsNaN(c.AR.Noise) || math.IsInf(c.AR.Noise, 0) {
		return fmt.Errorf("%s=%v: %w", KeyARNoise, c.AR.Noise, ErrInvalidConfig)
	}
	if c.AR.BurnIn < 0 {
		return fmt.Errorf("%s=%d: %w", KeyARBurnIn, c.AR.BurnIn, ErrInvalidConfig)
	}
	if _, err := arsample.ParseMode(c.AR.Mode); err != nil {
		return fmt.Errorf("%s=%q: %w", KeyARMode, c.AR.Mode, ErrInvalidConfig)
	}

	return nil
}

// Level returns the parsed log level, Info if it does not parse.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// Mode returns the parsed AR mode, Positive if it does not parse.
func (c *Config) Mode() arsample.Mode {
	m, _ := arsample.ParseMode(c.AR.Mode)

	return m
}

// DiagramOptions maps the finalization settings to diagram options.
// Call on a validated Config.
func (c *Config) DiagramOptions() []diagram.Option {
	return []diagram.Option{
		diagram.WithNoiseThreshold(c.NoiseThreshold),
		diagram.WithCanonicalPoint(c.CanonicalPoint),
	}
}

// SynthOptions maps the AR settings to synthesizer options.
// Call on a validated Config.
func (c *Config) SynthOptions() []arsample.Option {
	return []arsample.Option{
		arsample.WithNoise(c.AR.Noise),
		arsample.WithBurnIn(c.AR.BurnIn),
	}
}
