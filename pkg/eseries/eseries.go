// Package eseries generates the IEC 60063 preferred resistor values (E3
// through E192) and scales them across decades.
package eseries

import (
	"fmt"
	"math"
	"strings"
)

// Names lists the supported series in ascending size order.
var Names = []string{"E3", "E6", "E12", "E24", "E48", "E96", "E192"}

var sizes = map[string]int{
	"E3":   3,
	"E6":   6,
	"E12":  12,
	"E24":  24,
	"E48":  48,
	"E96":  96,
	"E192": 192,
}

// baseSize is the number of E192 values per decade; every other series is a
// slice of the E192 base list.
const baseSize = 192

// The mathematical rule 10^(i/n) disagrees with the standardized tables for
// the series below E48; these substitutions restore the published values
// (26->27 through 46->47, and 83->82).
var corrections = map[int]int{
	26: 27,
	29: 30,
	32: 33,
	35: 36,
	38: 39,
	42: 43,
	46: 47,
	83: 82,
}

// Series is one of the standard resistor value series.
type Series struct {
	Name      string
	Size      int
	mantissas []float64
}

// ForName resolves a series by name, e.g. "E24" or "e96". A bare size such as
// "24" is also accepted.
func ForName(name string) (Series, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n != "" && !strings.HasPrefix(n, "E") {
		n = "E" + n
	}
	size, ok := sizes[n]
	if !ok {
		return Series{}, fmt.Errorf("unknown series %q, expected one of %s", name, strings.Join(Names, ", "))
	}
	return Series{Name: n, Size: size, mantissas: mantissas(size)}, nil
}

// mantissas derives the per-decade values for a series of the given size.
// The E192 base list is computed from the logarithmic rule and sliced; the
// series below E48 are then rounded to two significant digits with the
// standardized corrections applied.
func mantissas(size int) []float64 {
	base := make([]int, baseSize)
	for i := range base {
		v := math.Round(math.Pow(10, float64(i)/baseSize)*100) / 100
		base[i] = int(math.Round(v * 100))
	}

	step := baseSize / size
	out := make([]float64, 0, size)
	for i := 0; i < baseSize; i += step {
		if size < 48 {
			v := int(math.Round(float64(base[i]) / 10))
			if c, ok := corrections[v]; ok {
				v = c
			}
			out = append(out, float64(v)/10)
		} else {
			out = append(out, float64(base[i])/100)
		}
	}
	return out
}

// Mantissas returns the per-decade values in ascending order, each in [1, 10).
func (s Series) Mantissas() []float64 {
	out := make([]float64, len(s.mantissas))
	copy(out, s.mantissas)
	return out
}

// Values returns every series value across the decades 10^minExp through
// 10^maxExp, in ascending order.
func (s Series) Values(minExp, maxExp int) []float64 {
	if maxExp < minExp {
		return nil
	}
	vals := make([]float64, 0, len(s.mantissas)*(maxExp-minExp+1))
	for exp := minExp; exp <= maxExp; exp++ {
		scale := math.Pow(10, float64(exp))
		for _, m := range s.mantissas {
			vals = append(vals, m*scale)
		}
	}
	return vals
}

// StepTolerancePercent returns the relative spacing between adjacent series
// values as a percentage. Any divider pair whose output error exceeds this is
// worse than a single value step and not worth reporting.
func (s Series) StepTolerancePercent() float64 {
	return (s.mantissas[1]/s.mantissas[0] - 1) * 100
}
