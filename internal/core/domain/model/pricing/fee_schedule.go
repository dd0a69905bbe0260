// Package pricing holds the delivery fee schedule. Schedules are append
// only: admins write new rows and the most recently set one wins. When no
// schedule has ever been stored the built-in defaults apply.
package pricing

import (
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

// Built-in rates used until an admin stores a schedule.
const (
	DefaultBaseFee      = 50.0
	DefaultPerKmRate    = 10.0
	DefaultPerMeterRate = 0.01
)

// FeeSchedule is one versioned set of delivery rates. PerMeterRate is
// carried for the admin surface but takes no part in fee computation.
type FeeSchedule struct {
	id           kernel.UUID
	baseFee      float64
	perKmRate    float64
	perMeterRate float64
	setBy        string
	setAt        time.Time

	guard guard.ConstructorGuard
}

// NewFeeSchedule creates a schedule row set by an admin.
func NewFeeSchedule(
	id kernel.UUID,
	baseFee float64,
	perKmRate float64,
	perMeterRate float64,
	setBy string,
	setAt time.Time,
) (FeeSchedule, error) {
	if err := id.Validate(); err != nil {
		return FeeSchedule{}, err
	}
	if baseFee < 0 {
		return FeeSchedule{}, errs.NewValueIsOutOfRangeError("baseFee", baseFee, 0, nil)
	}
	if perKmRate < 0 {
		return FeeSchedule{}, errs.NewValueIsOutOfRangeError("perKmRate", perKmRate, 0, nil)
	}
	if perMeterRate < 0 {
		return FeeSchedule{}, errs.NewValueIsOutOfRangeError("perMeterRate", perMeterRate, 0, nil)
	}
	if setBy == "" {
		return FeeSchedule{}, errs.NewValueIsRequiredError("setBy")
	}

	return FeeSchedule{
		id:           id,
		baseFee:      baseFee,
		perKmRate:    perKmRate,
		perMeterRate: perMeterRate,
		setBy:        setBy,
		setAt:        setAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// DefaultFeeSchedule returns the built-in rates as a schedule value.
// It carries no id and no author; it is never persisted.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		baseFee:      DefaultBaseFee,
		perKmRate:    DefaultPerKmRate,
		perMeterRate: DefaultPerMeterRate,
		guard:        guard.NewConstructorGuard(),
	}
}

func (s FeeSchedule) Validate() error {
	return s.guard.Validate(errs.NewValueIsRequiredError("feeSchedule"))
}

func (s FeeSchedule) ID() kernel.UUID       { return s.id }
func (s FeeSchedule) BaseFee() float64      { return s.baseFee }
func (s FeeSchedule) PerKmRate() float64    { return s.perKmRate }
func (s FeeSchedule) PerMeterRate() float64 { return s.perMeterRate }
func (s FeeSchedule) SetBy() string         { return s.setBy }
func (s FeeSchedule) SetAt() time.Time      { return s.setAt }

// DeliveryFee computes the fee for a trip of distanceKm kilometers,
// rounded to two decimals.
func (s FeeSchedule) DeliveryFee(distanceKm float64) float64 {
	return kernel.Round2(s.baseFee + distanceKm*s.perKmRate)
}
