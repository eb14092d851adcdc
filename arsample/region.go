// SPDX-License-Identifier: MIT
// Package: sublevel/arsample
//
// region.go - stability-region geometry for plotting collaborators.
//
// Nothing here draws; it only emits the polygon and curve a plot needs.

package arsample

import "fmt"

// Point is a (φ1, φ2) coordinate.
type Point struct {
	Phi1 float64 `json:"phi1" yaml:"phi1"`
	Phi2 float64 `json:"phi2" yaml:"phi2"`
}

// Region is the part of the stationarity triangle covered by a Mode.
type Region struct {
	Mode    Mode    `json:"mode" yaml:"mode"`
	Phi1Min float64 `json:"phi1_min" yaml:"phi1_min"`
	Phi1Max float64 `json:"phi1_max" yaml:"phi1_max"`
}

// RegionOf returns the Region of mode.
func RegionOf(mode Mode) (Region, error) {
	if !mode.Valid() {
		return Region{}, fmt.Errorf("RegionOf(%v): %w", mode, ErrUnknownMode)
	}
	lo, hi := mode.phi1Range()

	return Region{Mode: mode, Phi1Min: lo, Phi1Max: hi}, nil
}

// Triangle returns the region's polygon in counter-clockwise order.
// For Both it is the full triangle (-2,-1), (2,-1), (0,1); the one-sided
// modes cut it along φ1 = 0.
func (r Region) Triangle() []Point {
	switch r.Mode {
	case Positive:
		return []Point{{0, -1}, {2, -1}, {0, 1}}
	case Negative:
		return []Point{{-2, -1}, {0, -1}, {0, 1}}
	default:
		return []Point{{-2, -1}, {2, -1}, {0, 1}}
	}
}

// Parabola samples the real/complex root boundary φ2 = -φ1²/4 at n evenly
// spaced φ1 values over [Phi1Min, Phi1Max], endpoints included. n < 2 yields nil.
func (r Region) Parabola(n int) []Point {
	if n < 2 {
		return nil
	}
	out := make([]Point, n)
	step := (r.Phi1Max - r.Phi1Min) / float64(n-1)
	for i := range out {
		x := r.Phi1Min + step*float64(i)
		out[i] = Point{Phi1: x, Phi2: rootBoundary(x)}
	}
	// Pin the last point to the exact endpoint.
	out[n-1].Phi1 = r.Phi1Max
	out[n-1].Phi2 = rootBoundary(r.Phi1Max)

	return out
}

// rootBoundary is φ2 = -φ1²/4, written so that φ1 = 0 yields +0.
func rootBoundary(phi1 float64) float64 { return 0 - 0.25*phi1*phi1 }

// Contains reports whether c is in the region and on the requested side of
// the parabola.
func (r Region) Contains(c Coeffs, oscillatory bool) bool {
	if c.Phi1 < r.Phi1Min || c.Phi1 > r.Phi1Max || !c.Stationary() {
		return false
	}

	return c.Oscillatory() == oscillatory
}
