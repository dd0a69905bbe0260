package ports

import (
	"context"

	"veggo/internal/core/domain/model/pricing"
)

// FeeScheduleRepository defines the persistence contract for the append-only
// delivery fee schedule log.
type FeeScheduleRepository interface {
	// Append stores a new schedule row. Rows are never updated or deleted.
	Append(ctx context.Context, schedule pricing.FeeSchedule) error

	// GetLatest retrieves the most recently set schedule, or (nil, nil)
	// when none has ever been stored.
	GetLatest(ctx context.Context) (*pricing.FeeSchedule, error)

	// GetHistory retrieves all schedule rows, newest first.
	GetHistory(ctx context.Context) ([]pricing.FeeSchedule, error)
}
