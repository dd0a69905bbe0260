package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"veggo/internal/core/domain/model/pricing"
)

// DeliverySettingsView is the fee schedule currently in effect. When no
// schedule has ever been set, the built-in defaults are reported with empty
// authorship.
type DeliverySettingsView struct {
	BaseFee      float64    `json:"base_fee"`
	PerKmRate    float64    `json:"per_km_rate"`
	PerMeterRate float64    `json:"per_meter_rate"`
	SetBy        string     `json:"set_by"`
	SetAt        *time.Time `json:"set_at"`
}

// GetDeliverySettingsQueryHandler retrieves the newest fee schedule row, or
// the defaults when the schedule history is empty.
type GetDeliverySettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliverySettingsQueryHandler creates a handler for settings lookups.
func NewGetDeliverySettingsQueryHandler(db *gorm.DB) GetDeliverySettingsQueryHandler {
	return GetDeliverySettingsQueryHandler{db: db}
}

// Handle executes the settings lookup.
func (h GetDeliverySettingsQueryHandler) Handle(ctx context.Context, query GetDeliverySettingsQuery) (DeliverySettingsView, error) {
	if err := query.Validate(); err != nil {
		return DeliverySettingsView{}, err
	}

	var rows []struct {
		BaseFee      float64
		PerKmRate    float64
		PerMeterRate float64
		SetBy        string
		SetAt        time.Time
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT base_fee, per_km_rate, per_meter_rate, set_by, set_at
		FROM fee_schedules
		ORDER BY set_at DESC, seq DESC
		LIMIT 1
	`).Scan(&rows).Error
	if err != nil {
		return DeliverySettingsView{}, err
	}

	if len(rows) == 0 {
		return DeliverySettingsView{
			BaseFee:      pricing.DefaultBaseFee,
			PerKmRate:    pricing.DefaultPerKmRate,
			PerMeterRate: pricing.DefaultPerMeterRate,
		}, nil
	}

	row := rows[0]
	return DeliverySettingsView{
		BaseFee:      row.BaseFee,
		PerKmRate:    row.PerKmRate,
		PerMeterRate: row.PerMeterRate,
		SetBy:        row.SetBy,
		SetAt:        &row.SetAt,
	}, nil
}
