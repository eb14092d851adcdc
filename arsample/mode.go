// SPDX-License-Identifier: MIT
// Package: sublevel/arsample
//
// mode.go - sign policy for φ1.

package arsample

import (
	"fmt"
	"strings"
)

// Mode selects the sign of φ1.
type Mode int

const (
	// Positive draws φ1 from [0, 2).
	Positive Mode = iota
	// Negative draws φ1 from (-2, 0].
	Negative
	// Both draws φ1 from [-2, 2).
	Both
)

var modeNames = [...]string{"positive", "negative", "both"}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < Positive || m > Both {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool { return m >= Positive && m <= Both }

// ParseMode maps "positive", "negative" or "both" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if key == name {
			return Mode(i), nil
		}
	}

	return Positive, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// MarshalText encodes m by name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(m), ErrUnknownMode)
	}

	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// phi1Range returns the interval φ1 is drawn from.
func (m Mode) phi1Range() (lo, hi float64) {
	switch m {
	case Negative:
		return -2, 0
	case Both:
		return -2, 2
	default:
		return 0, 2
	}
}
