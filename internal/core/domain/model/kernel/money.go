package kernel

import "math"

// Round2 rounds a monetary amount to 2 decimal places. Order subtotal and
// delivery fee are rounded independently with Round2 before being summed into
// the final price; the sum itself is not re-rounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
