// Package utils provides the small numeric helpers shared by the
// calculation packages.
package utils

// secsScale converts an interval fraction into seconds.
const secsScale = 600.0

// MinMax clamps val into the closed range [minVal, maxVal].
func MinMax(val, minVal, maxVal float64) float64 {
	if val > maxVal {
		return maxVal
	}
	if val < minVal {
		return minVal
	}
	return val
}

// IntCeiling rounds val up to the smallest integer greater than or
// equal to it.
func IntCeiling(val float64) int {
	if val < 0 {
		return int(val - 0.9999)
	}
	return int(val + 0.9999)
}

// Secs converts a fraction of an interval into whole seconds, rounding
// half up.
func Secs(amount float64) int {
	return int(amount*secsScale + 0.5)
}
