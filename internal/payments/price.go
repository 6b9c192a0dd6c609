package payments

import "math"

// MinorUnits converts a major-unit amount to the provider's integer minor
// units (12.5 -> 1250).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// MajorUnits converts the provider's minor-unit totals back (2500 -> 25).
func MajorUnits(amount int64) float64 {
	return float64(amount) / 100
}
