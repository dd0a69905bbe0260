// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence.
package agentrepo

import (
	"time"

	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent
// aggregates. The last reported position is nullable; agents that never
// reported have no location.
type AgentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	Email         string    `gorm:"uniqueIndex;not null"`
	Phone         string
	PasswordHash  string `gorm:"not null"`
	Vehicle       string `gorm:"not null"`
	LicenseNumber string
	Approved      bool `gorm:"index"`
	LocLat        *float64
	LocLng        *float64
	LocReportedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention.
func (AgentDTO) TableName() string {
	return "agents"
}

func fromDomain(a *agent.Agent) AgentDTO {
	dto := AgentDTO{
		ID:            a.ID().Bytes(),
		Name:          a.Name(),
		Email:         a.Email(),
		Phone:         a.Phone(),
		PasswordHash:  a.PasswordHash(),
		Vehicle:       a.Vehicle().String(),
		LicenseNumber: a.LicenseNumber(),
		Approved:      a.IsApproved(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}

	if loc := a.Location(); loc != nil {
		lat := loc.Point.Lat()
		lng := loc.Point.Lng()
		reportedAt := loc.ReportedAt
		dto.LocLat = &lat
		dto.LocLng = &lng
		dto.LocReportedAt = &reportedAt
	}

	return dto
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := agent.ParseVehicleKind(dto.Vehicle)
	if err != nil {
		return nil, err
	}

	var location *agent.Location
	if dto.LocLat != nil && dto.LocLng != nil && dto.LocReportedAt != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LocLat, *dto.LocLng)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &agent.Location{
			Point:      point,
			ReportedAt: *dto.LocReportedAt,
		}
	}

	return agent.RestoreAgent(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.PasswordHash,
		vehicle,
		dto.LicenseNumber,
		dto.Approved,
		location,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
