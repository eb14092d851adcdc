// SPDX-License-Identifier: MIT
// Package: sublevel/arsample
//
// options.go - functional options for Synthesize.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Defaults: noise σ = 1, burn-in = 100 samples, mean μ = 0.

package arsample

import (
	"fmt"
	"math"
)

const (
	defaultNoise  = 1.0
	defaultBurnIn = 100
	defaultMean   = 0.0
)

// synthConfig holds resolved Synthesize knobs. Passed by value.
type synthConfig struct {
	noise  float64 // σ ≥ 0
	burnIn int     // ≥ 0 samples discarded before output
	mean   float64 // finite offset added to every output sample
}

// Option customizes Synthesize.
type Option func(*synthConfig)

func newSynthConfig(opts ...Option) synthConfig {
	cfg := synthConfig{noise: defaultNoise, burnIn: defaultBurnIn, mean: defaultMean}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithNoise sets the innovation standard deviation σ. Panics if σ < 0 or not finite.
func WithNoise(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic(fmt.Sprintf("arsample: WithNoise(%v)", sigma))
	}
	return func(c *synthConfig) { c.noise = sigma }
}

// WithBurnIn sets how many leading samples are discarded. Panics if k < 0.
func WithBurnIn(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("arsample: WithBurnIn(%d)", k))
	}
	return func(c *synthConfig) { c.burnIn = k }
}

// WithMean shifts the output by μ. Panics if μ is not finite.
func WithMean(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic(fmt.Sprintf("arsample: WithMean(%v)", mu))
	}
	return func(c *synthConfig) { c.mean = mu }
}
