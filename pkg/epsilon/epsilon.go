// Package epsilon compares floating point values for approximate equality.
package epsilon

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the machine epsilon of single precision floats.
//
// It is used as tolerance for all comparisons, including float64 ones.
const Epsilon float64 = 0x1p-23

// Equal reports whether a and b differ by less than [Epsilon].
//
// The tolerance is absolute, so precision degrades for large magnitudes.
// NaN is never equal to anything, including itself.
func Equal[T constraints.Float](a, b T) bool {
	d := a - b
	return math.Abs(float64(d)) < Epsilon
}
