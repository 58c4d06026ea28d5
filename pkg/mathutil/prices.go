// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// MinInt returns the minimum of two int values
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxInt returns the maximum of two int values
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClampFloat restricts val to the inclusive range [lo, hi].
func ClampFloat(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// RoundToInt rounds a value to the nearest integer, halves away from zero.
func RoundToInt(val float64) int {
	return int(math.Round(val))
}

// Midpoint returns the arithmetic mean of two integer prices. The result
// may be fractional even though curve prices are integers.
func Midpoint(a, b int) float64 {
	return float64(a+b) / 2
}

// Ratio returns value divided by total, or 0 when total is 0.
func Ratio(value, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(value) / float64(total)
}
