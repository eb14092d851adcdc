// SPDX-License-Identifier: MIT
// Package: sublevel/diagram
//
// finalize.go - noise filter, canonical origin, essential-class removal.

package diagram

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sublevel/persistence"
)

// ErrInvalidPair indicates a raw pair with NaN coordinates, an infinite
// birth or birth > death. Sweep never produces such pairs.
var ErrInvalidPair = errors.New("diagram: invalid persistence pair")

const methodFinalize = "Finalize"

// Finalize turns raw sweep output into a Diagram.
//
// Steps:
//  1. Keep essential pairs; keep finite pairs with lifetime > NoiseThreshold.
//  2. Prepend (0,0,0) when CanonicalPoint is set.
//  3. Remove pairs with infinite death.
//
// The raw input is never modified. Complexity: O(len(raw.Pairs)).
func Finalize(raw persistence.Raw, opts ...Option) (Diagram, error) {
	o := NewOptions(opts...)

	for i, p := range raw.Pairs {
		if math.IsNaN(p.Birth) || math.IsNaN(p.Death) || math.IsInf(p.Birth, 0) || p.Birth > p.Death {
			return Diagram{}, fmt.Errorf("%s: pair %d (%v, %v): %w", methodFinalize, i, p.Birth, p.Death, ErrInvalidPair)
		}
	}

	// 1. noise filter; essential pairs pass through untouched.
	kept := make([]persistence.Pair, 0, len(raw.Pairs)+1)
	for _, p := range raw.Pairs {
		if !p.Essential() && p.Lifetime() <= o.NoiseThreshold {
			continue
		}
		kept = append(kept, p)
	}

	// 2. canonical origin goes first.
	if o.CanonicalPoint {
		kept = append([]persistence.Pair{{Birth: 0, Death: 0, Dim: persistence.Dim0}}, kept...)
	}

	// 3. bounded features only.
	rows := make([]Row, 0, len(kept))
	for _, p := range kept {
		if math.IsInf(p.Death, 0) {
			continue
		}
		rows = append(rows, Row{p.Birth, p.Death, float64(p.Dim)})
	}

	return Diagram{rows: rows}, nil
}
