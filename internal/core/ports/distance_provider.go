package ports

import (
	"context"

	"veggo/internal/core/domain/model/kernel"
)

// DistanceProvider resolves the travel distance between two coordinates.
//
// Implementations never fail: when the external routing service is slow,
// down, or returns garbage, they fall back to the great-circle distance, so
// order creation is never blocked on a third party.
type DistanceProvider interface {
	// Distance returns the distance from origin to destination in
	// kilometers and meters.
	Distance(ctx context.Context, origin, destination kernel.GeoPoint) (km float64, meters float64)
}
