// SPDX-License-Identifier: MIT
// Package: sublevel/persistence
//
// sweep.go - elder-rule union-find sweep over a filtered path graph.

package persistence

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sublevel/filtration"
)

const methodSweep = "Sweep"

// Sweep computes the raw 0-dimensional persistence pairs of g.
//
// Steps:
//  1. Validate g (non-nil, indexed vertices, finite births, edge invariants).
//  2. Sort all vertex and edge events (see buildEvents).
//  3. Vertex event: new singleton set born at the vertex weight.
//     Edge event: if the endpoints are already connected, skip (a cycle).
//     Otherwise the younger set dies: emit (younger birth, edge weight).
//  4. Emit (birth, +Inf) for every surviving set, ascending root index.
//
// Complexity: O(N log N) time, O(N) memory.
func Sweep(g *filtration.Graph) (Raw, error) {
	if err := validateGraph(g); err != nil {
		return Raw{}, err
	}

	events := buildEvents(g)
	dsu := NewDisjointSet(len(g.Vertices))
	// A path graph has at most N-1 merges plus one essential class.
	pairs := make([]Pair, 0, len(g.Vertices))

	for _, ev := range events {
		switch ev.kind {
		case vertexEvent:
			dsu.Add(ev.index, ev.weight)
		case edgeEvent:
			_, dead, merged := dsu.Union(ev.u, ev.v)
			if !merged {
				// Both endpoints already connected: the edge closes a cycle.
				continue
			}
			// dead is a former root; its birth slot still holds the younger birth.
			pairs = append(pairs, Pair{Birth: dsu.birth[dead], Death: ev.weight, Dim: Dim0})
		}
	}

	inf := math.Inf(1)
	for _, root := range dsu.Sets() {
		pairs = append(pairs, Pair{Birth: dsu.birth[root], Death: inf, Dim: Dim0})
	}

	return Raw{Pairs: pairs}, nil
}

// validateGraph checks the invariants Sweep relies on.
func validateGraph(g *filtration.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodSweep, ErrNilGraph)
	}
	n := len(g.Vertices)
	if n == 0 {
		return fmt.Errorf("%s: no vertices: %w", methodSweep, ErrMalformedGraph)
	}
	for i, v := range g.Vertices {
		if v.Index != i {
			return fmt.Errorf("%s: vertex at position %d has index %d: %w", methodSweep, i, v.Index, ErrMalformedGraph)
		}
		if math.IsNaN(v.Birth) || math.IsInf(v.Birth, 0) {
			return fmt.Errorf("%s: vertex %d has non-finite birth: %w", methodSweep, i, ErrMalformedGraph)
		}
	}
	for i, e := range g.Edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return fmt.Errorf("%s: edge %d endpoint out of range (%d,%d): %w", methodSweep, i, e.U, e.V, ErrMalformedGraph)
		}
		if math.IsNaN(e.Birth) || math.IsInf(e.Birth, 0) {
			return fmt.Errorf("%s: edge %d has non-finite birth: %w", methodSweep, i, ErrMalformedGraph)
		}
		if e.Birth < g.Vertices[e.U].Birth || e.Birth < g.Vertices[e.V].Birth {
			return fmt.Errorf("%s: edge %d born before an endpoint: %w", methodSweep, i, ErrMalformedGraph)
		}
	}

	return nil
}
