package feeschedulerepo

import (
	"context"
	"errors"

	"veggo/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// GormFeeScheduleRepository implements FeeScheduleRepository using GORM.
type GormFeeScheduleRepository struct {
	db *gorm.DB
}

// NewGormFeeScheduleRepository creates a new GORM fee schedule repository.
func NewGormFeeScheduleRepository(db *gorm.DB) *GormFeeScheduleRepository {
	return &GormFeeScheduleRepository{db: db}
}

// Append stores a new schedule row.
func (r *GormFeeScheduleRepository) Append(ctx context.Context, schedule pricing.FeeSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(schedule)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLatest retrieves the most recently set schedule, or (nil, nil) when
// none has ever been stored.
func (r *GormFeeScheduleRepository) GetLatest(ctx context.Context) (*pricing.FeeSchedule, error) {
	var dto FeeScheduleDTO
	err := r.db.WithContext(ctx).Order("set_at DESC, seq DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	schedule, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetHistory retrieves all schedule rows, newest first.
func (r *GormFeeScheduleRepository) GetHistory(ctx context.Context) ([]pricing.FeeSchedule, error) {
	var dtos []FeeScheduleDTO
	if err := r.db.WithContext(ctx).Order("set_at DESC, seq DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	schedules := make([]pricing.FeeSchedule, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}
