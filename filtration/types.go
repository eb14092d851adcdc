// SPDX-License-Identifier: MIT
// Package: sublevel/filtration
//
// types.go - vertex, edge and graph types plus sentinel errors.

package filtration

import "errors"

// ErrInvalidInput indicates that the series is empty or contains a non-finite value.
// Callers branch with errors.Is; the wrapped message carries the offending index.
var ErrInvalidInput = errors.New("filtration: invalid input series")

// Vertex is a sample of the series.
//
// Index is the position in the series; Birth is the sample value, i.e. the
// filtration level at which the vertex appears.
type Vertex struct {
	Index int
	Birth float64
}

// Edge joins two consecutive samples U and V = U+1.
// Birth is max(birth(U), birth(V)).
type Edge struct {
	U, V  int
	Birth float64
}

// Graph is the filtered path graph of a series.
//
// Vertices are indexed 0..N-1 in series order and Edges[i] joins i and i+1.
// A Graph returned by Build is never modified by this module; treat it as read-only.
type Graph struct {
	Vertices []Vertex
	Edges    []Edge
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return len(g.Vertices)
}

// Values returns a fresh copy of the vertex births in index order.
// Complexity: O(N).
func (g *Graph) Values() []float64 {
	if g == nil {
		return nil
	}
	out := make([]float64, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = v.Birth
	}

	return out
}
