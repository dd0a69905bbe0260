// Package feeschedulerepo persists the append-only delivery fee schedule
// log. Rows are only ever inserted; the newest row is the schedule in
// effect.
package feeschedulerepo

import (
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// FeeScheduleDTO represents one stored schedule row. The surrogate key
// preserves insertion order so ties on set_at resolve to the latest append.
type FeeScheduleDTO struct {
	Seq          uint      `gorm:"primaryKey;autoIncrement"`
	ID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BaseFee      float64
	PerKmRate    float64
	PerMeterRate float64
	SetBy        string
	SetAt        time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (FeeScheduleDTO) TableName() string {
	return "fee_schedules"
}

func fromDomain(s pricing.FeeSchedule) FeeScheduleDTO {
	return FeeScheduleDTO{
		ID:           s.ID().Bytes(),
		BaseFee:      s.BaseFee(),
		PerKmRate:    s.PerKmRate(),
		PerMeterRate: s.PerMeterRate(),
		SetBy:        s.SetBy(),
		SetAt:        s.SetAt(),
	}
}

func toDomain(dto FeeScheduleDTO) (pricing.FeeSchedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.FeeSchedule{}, err
	}

	return pricing.NewFeeSchedule(
		id,
		dto.BaseFee,
		dto.PerKmRate,
		dto.PerMeterRate,
		dto.SetBy,
		dto.SetAt,
	)
}
