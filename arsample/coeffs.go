// SPDX-License-Identifier: MIT
// Package: sublevel/arsample
//
// coeffs.go - coefficient pair and its region tests, plus Sample.

package arsample

import (
	"fmt"
	"math"
	"math/rand"
)

const methodSample = "Sample"

// Coeffs holds AR(2) coefficients.
type Coeffs struct {
	Phi1 float64 `json:"phi1" yaml:"phi1"`
	Phi2 float64 `json:"phi2" yaml:"phi2"`
}

// Stationary reports whether c lies strictly inside the stationarity triangle.
func (c Coeffs) Stationary() bool {
	return c.Phi2 > -1 && c.Phi2 < 1+c.Phi1 && c.Phi2 < 1-c.Phi1
}

// Oscillatory reports whether the characteristic roots are complex (φ1² + 4φ2 < 0).
func (c Coeffs) Oscillatory() bool {
	return c.Phi1*c.Phi1+4*c.Phi2 < 0
}

// Sample draws one coefficient pair uniformly inside the stationary region
// selected by mode and oscillatory. φ1 is drawn first, then φ2, each with a
// single rng.Float64 call, so the stream consumption is fixed.
//
// Errors: ErrNeedRand (nil rng), ErrUnknownMode.
// Complexity: O(1).
func Sample(rng *rand.Rand, mode Mode, oscillatory bool) (Coeffs, error) {
	if rng == nil {
		return Coeffs{}, fmt.Errorf("%s: %w", methodSample, ErrNeedRand)
	}
	if !mode.Valid() {
		return Coeffs{}, fmt.Errorf("%s: %v: %w", methodSample, mode, ErrUnknownMode)
	}

	var phi1 float64
	if mode == Negative {
		// Mirror of Positive: (-2, 0], the open end sits at -2.
		phi1 = -uniform(rng, 0, 2)
	} else {
		lo, hi := mode.phi1Range()
		phi1 = uniform(rng, lo, hi)
	}

	parabola := -0.25 * phi1 * phi1
	var phi2 float64
	if oscillatory {
		phi2 = uniform(rng, -1, parabola)
	} else {
		phi2 = uniform(rng, math.Max(-1, parabola), math.Min(1+phi1, 1-phi1))
	}

	return Coeffs{Phi1: phi1, Phi2: phi2}, nil
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
