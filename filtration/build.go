// SPDX-License-Identifier: MIT
// Package: sublevel/filtration
//
// build.go - Build(values) constructor.
//
// Contract:
//   - len(values) ≥ 1 and every value finite (else ErrInvalidInput).
//   - Vertices emitted in index order 0..N-1.
//   - Edges emitted (i-1, i) for i=1..N-1 in increasing order.
//   - Edge birth = max(endpoint births).
//
// Complexity:
//   - Time: O(N).
//   - Space: O(N) for the graph; the caller's slice is only read.

package filtration

import (
	"fmt"
	"math"
)

const methodBuild = "Build"

// Validate reports whether values can be filtered.
// It returns ErrInvalidInput wrapped with the reason and, for non-finite
// values, the first offending index.
func Validate(values []float64) error {
	if len(values) < 1 {
		return fmt.Errorf("%s: empty series: %w", methodBuild, ErrInvalidInput)
	}
	for i, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s: non-finite value %v at index %d: %w", methodBuild, x, i, ErrInvalidInput)
		}
	}

	return nil
}

// Build returns the filtered path graph of values.
//
// Steps:
//  1. Validate the series.
//  2. One vertex per sample, born at the sample value.
//  3. One edge per consecutive pair, born at the larger of the two values.
func Build(values []float64) (*Graph, error) {
	if err := Validate(values); err != nil {
		return nil, err
	}

	n := len(values)
	g := &Graph{
		Vertices: make([]Vertex, n),
		Edges:    make([]Edge, n-1),
	}
	for i, x := range values {
		g.Vertices[i] = Vertex{Index: i, Birth: x}
	}
	for i := 1; i < n; i++ {
		// max() keeps edge ≥ both endpoints, which orders every edge after its vertices.
		g.Edges[i-1] = Edge{U: i - 1, V: i, Birth: math.Max(values[i-1], values[i])}
	}

	return g, nil
}
