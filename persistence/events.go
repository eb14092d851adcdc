// SPDX-License-Identifier: MIT
// Package: sublevel/persistence
//
// events.go - filtration event list and its deterministic order.

package persistence

import (
	"sort"

	"github.com/katalvlaran/sublevel/filtration"
)

// eventKind orders vertices before edges of equal weight.
type eventKind uint8

const (
	vertexEvent eventKind = iota
	edgeEvent
)

// event is one simplex entering the filtration.
// For vertices index is the vertex id; for edges it is the edge position,
// with endpoints u and v.
type event struct {
	weight float64
	kind   eventKind
	index  int
	u, v   int
}

// buildEvents lists every vertex and edge of g as an event, sorted by
// (weight, kind, index). The key is unique per event, so the order is total.
// Complexity: O(N log N).
func buildEvents(g *filtration.Graph) []event {
	events := make([]event, 0, len(g.Vertices)+len(g.Edges))
	for _, vx := range g.Vertices {
		events = append(events, event{weight: vx.Birth, kind: vertexEvent, index: vx.Index, u: vx.Index, v: vx.Index})
	}
	for i, e := range g.Edges {
		events = append(events, event{weight: e.Birth, kind: edgeEvent, index: i, u: e.U, v: e.V})
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.weight != b.weight {
			return a.weight < b.weight
		}
		if a.kind != b.kind {
			return a.kind < b.kind
		}

		return a.index < b.index
	})

	return events
}
