// SPDX-License-Identifier: MIT
//
// File: sublevel.go
// Role: single function-level boundary over filtration → persistence → diagram.
// Policy:
//   - Errors surface immediately; no partial diagram is ever returned.
//   - No state between calls.

package sublevel

import (
	"fmt"

	"github.com/katalvlaran/sublevel/diagram"
	"github.com/katalvlaran/sublevel/filtration"
	"github.com/katalvlaran/sublevel/persistence"
)

// Compute returns the finalized 0-dimensional persistence diagram of values.
//
// Errors:
//   - filtration.ErrInvalidInput for an empty series or non-finite samples.
//
// Complexity: O(N log N) time, O(N) memory.
func Compute(values []float64, opts ...diagram.Option) (diagram.Diagram, error) {
	g, err := filtration.Build(values)
	if err != nil {
		return diagram.Diagram{}, fmt.Errorf("sublevel: %w", err)
	}
	raw, err := persistence.Sweep(g)
	if err != nil {
		return diagram.Diagram{}, fmt.Errorf("sublevel: %w", err)
	}
	d, err := diagram.Finalize(raw, opts...)
	if err != nil {
		return diagram.Diagram{}, fmt.Errorf("sublevel: %w", err)
	}

	return d, nil
}

// ComputeTensor is Compute followed by Diagram.Tensor: a (1, M, 3) array.
func ComputeTensor(values []float64, opts ...diagram.Option) ([][]diagram.Row, error) {
	d, err := Compute(values, opts...)
	if err != nil {
		return nil, err
	}

	return d.Tensor(), nil
}
