// Package aggregate reduces scoped entity rows into the dashboard reporting
// shapes. Every function is pure: same rows in, same buckets out, no I/O.
package aggregate

import (
	"math"
	"sort"
	"time"
)

// monthKey buckets a timestamp into its UTC calendar month.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// round2 rounds to 2 decimal places, half away from zero. Inputs here are
// non-negative, so this matches round-half-up.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// percentage returns part/total*100 rounded to 2 decimals, 0 when total is 0.
func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return round2(part / total * 100)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
