// SPDX-License-Identifier: MIT
//
// Package persistence computes the 0-dimensional persistence pairs of a
// filtered path graph with the elder-rule union-find sweep.
//
// What & Why
//
//   - Sweep the filtration upwards. Each vertex starts a connected component
//     at its birth value; each edge either closes a cycle (ignored here, it
//     belongs to dimension 1) or merges two components.
//   - Elder rule: on a merge the component born earlier survives, the younger
//     one dies at the edge value and is reported as the pair (birth, death).
//   - Components still alive at the end never die: they are reported as
//     essential pairs (birth, +Inf). For a path graph there is exactly one.
//
// For a 1-D series this is the merge tree of its basins: each local minimum
// is a birth and each basin dies at the lower of the maxima that separate it
// from an older basin. No explicit extrema search is required.
//
// Algorithm
//
//  1. Event list: one event per vertex, one per edge (2N-1 total).
//  2. Sort by weight; ties put vertices before edges, then lower index first.
//  3. Replay with a DisjointSet (path compression, union by birth).
//  4. Append one essential pair per surviving root, ascending root index.
//
// Determinism: the tie-break in step 2 fixes the order completely, so equal
// input values always produce the same pairs in the same order. When two
// components have equal births, the one whose elder vertex was swept first
// survives.
//
// Complexity: O(N log N) for the sort, O(N α(N)) for the sweep. Memory O(N).
//
// Errors:
//
//   - ErrNilGraph:       graph is nil.
//   - ErrMalformedGraph: vertex/edge tables violate the filtration invariants.
package persistence
