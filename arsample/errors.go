// SPDX-License-Identifier: MIT
// Package: sublevel/arsample
//
// errors.go - sentinel errors. Branch with errors.Is; context is attached with %w.

package arsample

import "errors"

// ErrBadSize indicates a requested series length below 1.
var ErrBadSize = errors.New("arsample: invalid size/length")

// ErrNeedRand indicates a nil *rand.Rand was passed to a stochastic function.
var ErrNeedRand = errors.New("arsample: rng is required")

// ErrUnstable indicates coefficients outside the stationarity triangle.
var ErrUnstable = errors.New("arsample: coefficients are not stationary")

// ErrUnknownMode indicates a Mode value or name outside Positive/Negative/Both.
var ErrUnknownMode = errors.New("arsample: unknown mode")
