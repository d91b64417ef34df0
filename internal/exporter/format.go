package exporter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatFloat formats a mean with exactly 2 decimal places, so 0 appears as 0.00
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatRatio renders f in its shortest round-trip form. Magnitudes in
// [1e-4, 1e16) use positional notation with at least one decimal digit,
// others use an exponent with two or more digits (1e-05, 1.5e+16).
func formatRatio(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}
