// Package format renders electrical quantities in engineering notation.
package format

import (
	"fmt"
	"math"
	"strconv"
)

// Resistance returns a resistance string with the usual engineering suffix
// (e.g., "4.7kΩ", "910Ω", "8.2MΩ").
func Resistance(ohms float64) string {
	abs := math.Abs(ohms)
	switch {
	case abs >= 1e9:
		return trimmed(ohms/1e9) + "GΩ"
	case abs >= 1e6:
		return trimmed(ohms/1e6) + "MΩ"
	case abs >= 1e3:
		return trimmed(ohms/1e3) + "kΩ"
	default:
		return trimmed(ohms) + "Ω"
	}
}

// Power returns a dissipation string scaled to W, mW, µW, or nW with three
// significant digits (e.g., "1.81mW").
func Power(watts float64) string {
	abs := math.Abs(watts)
	switch {
	case abs >= 1:
		return fmt.Sprintf("%.3gW", watts)
	case abs >= 1e-3:
		return fmt.Sprintf("%.3gmW", watts*1e3)
	case abs >= 1e-6:
		return fmt.Sprintf("%.3gµW", watts*1e6)
	default:
		return fmt.Sprintf("%.3gnW", watts*1e9)
	}
}

// Voltage returns a voltage string with four significant digits (e.g., "3.297V").
func Voltage(volts float64) string {
	return fmt.Sprintf("%.4gV", volts)
}

// Series values carry at most three significant digits, so the shortest
// representation is already clean.
func trimmed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
