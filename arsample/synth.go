// SPDX-License-Identifier: MIT
// Package: sublevel/arsample
//
// synth.go - AR(2) series synthesis.
//
// Contract:
//   - Synthesize(c, n, rng, opts...) → length-n series.
//   - n ≥ 1 (ErrBadSize), rng != nil (ErrNeedRand), c stationary (ErrUnstable).
//   - Starts from x[-1] = x[-2] = 0, runs burnIn+n steps, returns the last n.
//   - One rng.NormFloat64 per step; deterministic per rng state.
//
// Complexity: O(burnIn + n) time, O(n) memory.

package arsample

import (
	"fmt"
	"math/rand"
)

const methodSynthesize = "Synthesize"

// Synthesize generates n samples of the AR(2) process with coefficients c.
func Synthesize(c Coeffs, n int, rng *rand.Rand, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodSynthesize, n, ErrBadSize)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodSynthesize, ErrNeedRand)
	}
	if !c.Stationary() {
		return nil, fmt.Errorf("%s: phi=(%g, %g): %w", methodSynthesize, c.Phi1, c.Phi2, ErrUnstable)
	}

	cfg := newSynthConfig(opts...)
	out := make([]float64, n)

	var (
		prev1, prev2 float64 // x[t-1], x[t-2]
		x            float64
	)
	total := cfg.burnIn + n
	for t := 0; t < total; t++ {
		x = c.Phi1*prev1 + c.Phi2*prev2 + cfg.noise*rng.NormFloat64()
		prev2, prev1 = prev1, x
		if t >= cfg.burnIn {
			out[t-cfg.burnIn] = x + cfg.mean
		}
	}

	return out, nil
}

// SampleSeries draws coefficients with Sample and synthesizes n samples from
// the same rng stream.
func SampleSeries(rng *rand.Rand, mode Mode, oscillatory bool, n int, opts ...Option) (Coeffs, []float64, error) {
	c, err := Sample(rng, mode, oscillatory)
	if err != nil {
		return Coeffs{}, nil, err
	}
	series, err := Synthesize(c, n, rng, opts...)
	if err != nil {
		return Coeffs{}, nil, err
	}

	return c, series, nil
}
