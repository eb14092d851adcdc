// SPDX-License-Identifier: MIT
//
// Package diagram finalizes raw persistence pairs into the diagram consumed by
// downstream feature pipelines.
//
// Finalization, in order:
//
//  1. Drop every finite pair whose lifetime (death − birth) is ≤ the noise
//     threshold (default 1e-3). The essential pair is never dropped here.
//  2. Prepend the canonical origin (0, 0, 0), if enabled (default on).
//  3. Drop every pair with an infinite death.
//
// The result is exposed as a batch of one sample: a (1, M, 3) array of
// (birth, death, dimension) rows. When both the canonical point and every
// finite pair are filtered out the diagram is empty (M = 0); with defaults the
// smallest diagram is the single canonical row and that is not an error.
//
// Options follow the package-wide policy: With* constructors panic on
// meaningless values, Finalize itself only returns errors.
package diagram
