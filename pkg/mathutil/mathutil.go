// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/resistor-divider/pkg/constants"
)

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// PercentError returns the magnitude of the relative error of actual against
// target, as a percentage. A zero target yields zero to keep callers simple.
func PercentError(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return math.Abs((actual-target)/target) * constants.PercentageMultiplier
}
