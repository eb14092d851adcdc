// SPDX-License-Identifier: MIT
// Package: sublevel/diagram
//
// options.go - finalization policy knobs.
//
// Contract:
//   • Option constructors validate and panic on meaningless values.
//   • Options apply left to right; last wins.
//   • DefaultOptions() reproduces the feature-extraction defaults:
//     NoiseThreshold = 1e-3, CanonicalPoint = true.

package diagram

import (
	"fmt"
	"math"
)

// DefaultNoiseThreshold is the lifetime at or below which a finite pair is
// treated as filtration noise.
const DefaultNoiseThreshold = 1e-3

// Options configures Finalize.
//
// Fields:
//   - NoiseThreshold: finite pairs with death-birth ≤ NoiseThreshold are dropped (≥ 0).
//   - CanonicalPoint: prepend the (0,0,0) origin row.
type Options struct {
	NoiseThreshold float64
	CanonicalPoint bool
}

// Option mutates Options before finalization.
type Option func(*Options)

// DefaultOptions returns the default finalization policy.
func DefaultOptions() Options {
	return Options{
		NoiseThreshold: DefaultNoiseThreshold,
		CanonicalPoint: true,
	}
}

// NewOptions resolves opts on top of DefaultOptions.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithNoiseThreshold sets the noise threshold. Panics on negative or NaN values.
func WithNoiseThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 {
		panic(fmt.Sprintf("diagram: WithNoiseThreshold(%v)", t))
	}
	return func(o *Options) {
		o.NoiseThreshold = t
	}
}

// WithCanonicalPoint toggles the (0,0,0) origin row.
func WithCanonicalPoint(on bool) Option {
	return func(o *Options) {
		o.CanonicalPoint = on
	}
}

// WithOptions replaces the whole policy, e.g. one loaded from configuration.
// Panics if o.NoiseThreshold is negative or NaN.
func WithOptions(o Options) Option {
	if math.IsNaN(o.NoiseThreshold) || o.NoiseThreshold < 0 {
		panic(fmt.Sprintf("diagram: WithOptions(NoiseThreshold=%v)", o.NoiseThreshold))
	}
	return func(dst *Options) {
		*dst = o
	}
}
