package services

import (
	"veggo/internal/core/domain/model/pricing"
)

// Pricer is a domain service that resolves the effective fee schedule and
// quotes delivery fees from it. Schedules are append only, so the effective
// schedule is simply the most recently stored one, or the built-in defaults
// when none has ever been stored.
type Pricer struct{}

// NewPricer creates a new Pricer instance.
func NewPricer() Pricer {
	return Pricer{}
}

// Effective returns the schedule to charge against. latest is the most
// recently stored schedule, or nil when the store is empty.
func (Pricer) Effective(latest *pricing.FeeSchedule) pricing.FeeSchedule {
	if latest == nil {
		return pricing.DefaultFeeSchedule()
	}
	return *latest
}

// Quote computes the delivery fee for a trip under the given schedule.
func (Pricer) Quote(schedule pricing.FeeSchedule, distanceKm float64) float64 {
	return schedule.DeliveryFee(distanceKm)
}
