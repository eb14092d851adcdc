// SPDX-License-Identifier: MIT
// Package: sublevel/diagram
//
// diagram.go - the immutable finalized diagram and its array views.

package diagram

import (
	"encoding/json"

	"github.com/katalvlaran/sublevel/persistence"
)

// Row is one (birth, death, dimension) triple.
type Row = [3]float64

// Diagram is a finalized persistence diagram.
// It is immutable: every accessor returns a copy.
type Diagram struct {
	rows []Row
}

// Len returns the number of rows M.
func (d Diagram) Len() int { return len(d.rows) }

// At returns row i. It panics if i is out of range, like slice indexing.
func (d Diagram) At(i int) Row { return d.rows[i] }

// Rows returns a copy of the M×3 table.
func (d Diagram) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)

	return out
}

// Pairs returns the rows as persistence pairs.
func (d Diagram) Pairs() []persistence.Pair {
	out := make([]persistence.Pair, len(d.rows))
	for i, r := range d.rows {
		out[i] = persistence.Pair{Birth: r[0], Death: r[1], Dim: int(r[2])}
	}

	return out
}

// Tensor returns the diagram as a single-sample batch of shape (1, M, 3).
func (d Diagram) Tensor() [][]Row {
	return [][]Row{d.Rows()}
}

// Shape returns (1, M, 3).
func (d Diagram) Shape() [3]int { return [3]int{1, len(d.rows), 3} }

// Equal reports whether two diagrams hold bit-identical rows in the same order.
func (d Diagram) Equal(other Diagram) bool {
	if len(d.rows) != len(other.rows) {
		return false
	}
	for i := range d.rows {
		if d.rows[i] != other.rows[i] {
			return false
		}
	}

	return true
}

// MarshalJSON encodes the diagram as its (1, M, 3) tensor.
func (d Diagram) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Tensor())
}

// MarshalYAML encodes the diagram as its (1, M, 3) tensor (gopkg.in/yaml.v3 Marshaler).
func (d Diagram) MarshalYAML() (interface{}, error) {
	return d.Tensor(), nil
}

// Stack concatenates single-sample tensors into a batch of shape (B, M_i, 3).
// Diagrams keep their own row counts; no padding is applied.
func Stack(ds ...Diagram) [][]Row {
	out := make([][]Row, len(ds))
	for i, d := range ds {
		out[i] = d.Rows()
	}

	return out
}
