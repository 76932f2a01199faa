package ingest

import (
	"math"
	"strconv"
	"strings"
)

// Numeric coerces an arbitrary cell value to a finite float64. Blank cells,
// non-numeric text, NaN and ±Inf all come back as exactly 0; measure columns
// in the report templates are frequently left empty or filled with "-".
// Every measure cell in both extractors goes through this function.
func Numeric(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}
	// Reports exported from Excel carry thousands separators.
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// round2 rounds to two decimal places, matching the precision the dashboard
// stores for derived percentages.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// pctOf computes part/whole*100 rounded to 2dp, flooring to 0 when the
// denominator is zero or negative. Zero targets mean "no target set", not a
// division error.
func pctOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return round2(part / whole * 100)
}
