// SPDX-License-Identifier: MIT
//
// Package arsample draws stationary AR(2) coefficients and synthesizes the
// time series that feed the persistence pipeline.
//
// Model:
//
//	x[t] = φ1·x[t-1] + φ2·x[t-2] + σ·ε[t],   ε[t] ~ N(0, 1)
//
// Stationarity region (triangle):
//
//	φ2 > -1,   φ2 < 1 + φ1,   φ2 < 1 - φ1
//
// Inside the triangle the parabola φ2 = -φ1²/4 separates real characteristic
// roots (above, monotone decay) from complex roots (below, damped
// oscillation).
//
// Sampling (Sample):
//
//   - φ1 is uniform over the Mode's range: Positive [0,2), Negative (-2,0],
//     Both [-2,2).
//   - oscillatory: φ2 ~ U(-1, -φ1²/4).
//   - otherwise:   φ2 ~ U(max(-1, -φ1²/4), min(1+φ1, 1-φ1)).
//
// Determinism policy: every stochastic function takes an explicit *rand.Rand.
// There is no package-level RNG; equal RNG state ⇒ identical output.
package arsample
