// SPDX-License-Identifier: MIT
// Package: sublevel/persistence
//
// dsu.go - disjoint set keyed by vertex index, tracking the elder of each set.
//
// Policy:
//   - Find uses path halving (iterative, no recursion).
//   - Union attaches the younger root under the elder root. "Younger" means
//     larger birth; equal births fall back to insertion order (Add sequence).
//   - Elements must be Added before Find/Union sees them.

package persistence

// DisjointSet is a union-find over the indices 0..n-1 where every set
// remembers the birth of its oldest member.
// Not safe for concurrent use; one sweep owns one DisjointSet.
type DisjointSet struct {
	parent []int
	birth  []float64 // valid at roots
	order  []int     // Add sequence number of the root's elder, valid at roots
	added  []bool
	next   int
	sets   int
}

// NewDisjointSet allocates room for n elements; none are members yet.
// Complexity: O(n).
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		birth:  make([]float64, n),
		order:  make([]int, n),
		added:  make([]bool, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Add makes v a singleton set born at birth. Re-adding v is a no-op.
// Returns false if v is out of range.
func (d *DisjointSet) Add(v int, birth float64) bool {
	if v < 0 || v >= len(d.parent) {
		return false
	}
	if d.added[v] {
		return true
	}
	d.added[v] = true
	d.parent[v] = v
	d.birth[v] = birth
	d.order[v] = d.next
	d.next++
	d.sets++

	return true
}

// Contains reports whether v has been added.
func (d *DisjointSet) Contains(v int) bool {
	return v >= 0 && v < len(d.added) && d.added[v]
}

// Find returns the root of v's set, or -1 if v was never added.
// Complexity: amortized O(log n); near O(1) in practice.
func (d *DisjointSet) Find(v int) int {
	if !d.Contains(v) {
		return -1
	}
	for d.parent[v] != v {
		// Path halving: point v at its grandparent.
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}

	return v
}

// older reports whether root a is the elder of roots a and b.
func (d *DisjointSet) older(a, b int) bool {
	if d.birth[a] != d.birth[b] {
		return d.birth[a] < d.birth[b]
	}

	return d.order[a] < d.order[b]
}

// Union merges the sets containing u and v.
//
// Returns the surviving (elder) root, the root that died, and true when a
// merge happened. If u and v already share a set, or either is missing,
// it returns (root, -1, false).
func (d *DisjointSet) Union(u, v int) (survivor, dead int, merged bool) {
	ru, rv := d.Find(u), d.Find(v)
	if ru < 0 || rv < 0 {
		return -1, -1, false
	}
	if ru == rv {
		return ru, -1, false
	}
	if !d.older(ru, rv) {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	d.sets--

	return ru, rv, true
}

// Birth returns the birth of the set containing v (its elder's birth).
// The second result is false when v was never added.
func (d *DisjointSet) Birth(v int) (float64, bool) {
	r := d.Find(v)
	if r < 0 {
		return 0, false
	}

	return d.birth[r], true
}

// Len returns the number of live sets.
func (d *DisjointSet) Len() int { return d.sets }

// Sets returns the live roots in ascending index order.
// Complexity: O(n).
func (d *DisjointSet) Sets() []int {
	roots := make([]int, 0, d.sets)
	for v := range d.parent {
		if d.added[v] && d.parent[v] == v {
			roots = append(roots, v)
		}
	}

	return roots
}
