// SPDX-License-Identifier: MIT
// Package: sublevel/persistence
//
// types.go - Pair, Raw and sentinel errors.

package persistence

import (
	"errors"
	"math"
)

// ErrNilGraph indicates that Sweep received a nil graph.
var ErrNilGraph = errors.New("persistence: nil graph")

// ErrMalformedGraph indicates that the graph breaks a filtration invariant:
// no vertices, a vertex out of index order, a non-finite birth, an edge
// endpoint out of range, or an edge born before one of its endpoints.
var ErrMalformedGraph = errors.New("persistence: malformed filtration graph")

// Dim0 is the homological dimension of connected components.
const Dim0 = 0

// Pair is one point of a persistence diagram.
// Invariant: Birth ≤ Death. Death is +Inf for essential classes.
type Pair struct {
	Birth float64
	Death float64
	Dim   int
}

// Lifetime returns Death - Birth (+Inf for essential pairs).
func (p Pair) Lifetime() float64 { return p.Death - p.Birth }

// Essential reports whether the pair never dies.
func (p Pair) Essential() bool { return math.IsInf(p.Death, 1) }

// Raw is the unfiltered output of Sweep.
//
// Pairs holds finite pairs in merge order followed by the essential pairs.
type Raw struct {
	Pairs []Pair
}

// Finite returns a copy of the pairs with a finite death, in sweep order.
func (r Raw) Finite() []Pair {
	out := make([]Pair, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		if !p.Essential() {
			out = append(out, p)
		}
	}

	return out
}

// Essential returns a copy of the essential pairs.
func (r Raw) Essential() []Pair {
	var out []Pair
	for _, p := range r.Pairs {
		if p.Essential() {
			out = append(out, p)
		}
	}

	return out
}
