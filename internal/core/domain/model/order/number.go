package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NumberPrefix starts every order number.
const NumberPrefix = "VG"

// GenerateNumber produces a human-readable order number in the form
// VG<YYYYMMDD><6 random digits>. Uniqueness is enforced by the storage
// layer's unique index; a collision is a retryable creation failure, so
// callers regenerate and retry rather than ignore it.
func GenerateNumber(now time.Time) string {
	return fmt.Sprintf("%s%s%06d",
		NumberPrefix,
		now.UTC().Format("20060102"),
		rand.IntN(1000000), //nolint:gosec // order numbers are not secrets
	)
}
