// SPDX-License-Identifier: MIT
// Package: sublevel/batch
//
// errors.go - sentinel errors.

package batch

import "errors"

var (
	// ErrNoSeries indicates an empty workload.
	ErrNoSeries = errors.New("batch: no series")

	// ErrBadRequest indicates a GenerateRequest with a non-positive count or length.
	ErrBadRequest = errors.New("batch: invalid generate request")
)
