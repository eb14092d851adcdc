// SPDX-License-Identifier: MIT
//
// Package filtration turns an ordered sequence of real values into the
// weighted path graph of its sublevel-set filtration.
//
// What is built?
//
//	For a series x[0..N-1] the graph has
//	  • N vertices, vertex i born at x[i];
//	  • N-1 edges (i, i+1), edge born at max(x[i], x[i+1]).
//
//	An edge is never born before either endpoint, so sweeping the graph in
//	ascending weight order always sees both endpoints before the edge that
//	joins them. This is what the persistence sweep relies on.
//
// Example:
//
//	x = [3, 1, 3]
//
//	   3 ──3── 1 ──3── 3
//	  v0  e01  v1  e12  v2
//
// Errors:
//
//   - ErrInvalidInput: empty series, NaN or ±Inf values.
//
// Complexity: O(N) time and memory. The input slice is copied, never mutated.
package filtration
