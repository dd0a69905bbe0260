package queries

import (
	"errors"

	"veggo/internal/pkg/guard"
)

var ErrGetDeliverySettingsQueryIsNotConstructed = errors.New(
	"GetDeliverySettingsQuery must be created via NewGetDeliverySettingsQuery constructor",
)

// GetDeliverySettingsQuery retrieves the fee schedule in effect.
type GetDeliverySettingsQuery struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewGetDeliverySettingsQuery creates a validated settings request.
func NewGetDeliverySettingsQuery() (GetDeliverySettingsQuery, error) {
	return GetDeliverySettingsQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliverySettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliverySettingsQueryIsNotConstructed)
}
