package utils

import "math"

// RoundHalfUp rounds v to the given number of decimal places with half-up
// semantics, so 4.25 at one place becomes 4.3 rather than banker's 4.2.
func RoundHalfUp(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Floor(v*pow+0.5) / pow
}
