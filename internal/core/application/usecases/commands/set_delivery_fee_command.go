package commands

import (
	"errors"

	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrSetDeliveryFeeCommandIsNotConstructed = errors.New(
	"SetDeliveryFeeCommand must be created via NewSetDeliveryFeeCommand constructor",
)

// SetDeliveryFeeCommand represents an admin publishing new delivery rates.
// Rates are appended to the schedule log; existing rows are never touched
// and orders already priced keep their fees.
type SetDeliveryFeeCommand struct { //nolint:recvcheck //using for validation
	baseFee      float64
	perKmRate    float64
	perMeterRate float64
	setBy        string

	guard guard.ConstructorGuard
}

// NewSetDeliveryFeeCommand creates a validated rate publication command.
func NewSetDeliveryFeeCommand(baseFee, perKmRate, perMeterRate float64, setBy string) (SetDeliveryFeeCommand, error) {
	cmd := SetDeliveryFeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRates(baseFee, perKmRate, perMeterRate),
		cmd.setSetBy(setBy),
	); err != nil {
		return SetDeliveryFeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDeliveryFeeCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryFeeCommandIsNotConstructed)
}

func (c SetDeliveryFeeCommand) BaseFee() float64      { return c.baseFee }
func (c SetDeliveryFeeCommand) PerKmRate() float64    { return c.perKmRate }
func (c SetDeliveryFeeCommand) PerMeterRate() float64 { return c.perMeterRate }
func (c SetDeliveryFeeCommand) SetBy() string         { return c.setBy }

func (c *SetDeliveryFeeCommand) setRates(baseFee, perKmRate, perMeterRate float64) error {
	if baseFee < 0 {
		return errs.NewValueIsOutOfRangeError("baseFee", baseFee, 0, nil)
	}
	if perKmRate < 0 {
		return errs.NewValueIsOutOfRangeError("perKmRate", perKmRate, 0, nil)
	}
	if perMeterRate < 0 {
		return errs.NewValueIsOutOfRangeError("perMeterRate", perMeterRate, 0, nil)
	}
	c.baseFee = baseFee
	c.perKmRate = perKmRate
	c.perMeterRate = perMeterRate
	return nil
}

func (c *SetDeliveryFeeCommand) setSetBy(setBy string) error {
	if setBy == "" {
		return errs.NewValueIsRequiredError("setBy")
	}
	c.setBy = setBy
	return nil
}
