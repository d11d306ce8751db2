package workload

import (
	"fmt"
	"math"
	"strings"
)

// Rounding selects how a real-valued write count becomes an integer.
type Rounding int

const (
	// RoundHalfAway rounds halfway cases away from zero (2.5 -> 3, -2.5 -> -3).
	// This is the default and matches the reference scripts.
	RoundHalfAway Rounding = iota

	// RoundHalfEven rounds halfway cases to the nearest even integer
	// (2.5 -> 2, 3.5 -> 4).
	RoundHalfEven
)

// Rounding mode names accepted by ParseRounding.
const (
	RoundingNameHalfAway = "half-away"
	RoundingNameHalfEven = "half-even"
)

// ParseRounding converts a rounding mode name into a Rounding.
// Matching is case-insensitive.
func ParseRounding(name string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RoundingNameHalfAway:
		return RoundHalfAway, nil
	case RoundingNameHalfEven:
		return RoundHalfEven, nil
	default:
		return 0, fmt.Errorf("unknown rounding mode %q (want %s or %s)", name, RoundingNameHalfAway, RoundingNameHalfEven)
	}
}

// String returns the mode name.
func (r Rounding) String() string {
	switch r {
	case RoundHalfAway:
		return RoundingNameHalfAway
	case RoundHalfEven:
		return RoundingNameHalfEven
	default:
		return "unknown"
	}
}

// Round rounds v to the nearest integer using the mode.
func (r Rounding) Round(v float64) float64 {
	if r == RoundHalfEven {
		return math.RoundToEven(v)
	}
	return math.Round(v)
}
