// Package userrepo provides data transfer objects and mapping functions for
// customer account persistence.
package userrepo

import (
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting customer
// accounts. Verification and reset tokens are indexed because lookups arrive
// by token, not by ID.
type UserDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username          string    `gorm:"uniqueIndex;not null"`
	Email             string    `gorm:"uniqueIndex;not null"`
	PasswordHash      string    `gorm:"not null"`
	Phone             string
	Address           string
	HomeLat           *float64
	HomeLng           *float64
	Verified          bool
	VerificationToken string `gorm:"index"`
	ResetToken        string `gorm:"index"`
	ResetTokenExpires *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides GORM's default naming convention.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	dto := UserDTO{
		ID:                u.ID().Bytes(),
		Username:          u.Username(),
		Email:             u.Email(),
		PasswordHash:      u.PasswordHash(),
		Phone:             u.Phone(),
		Address:           u.Address(),
		Verified:          u.IsVerified(),
		VerificationToken: u.VerificationToken(),
		ResetToken:        u.ResetToken(),
		ResetTokenExpires: u.ResetTokenExpires(),
		CreatedAt:         u.CreatedAt(),
		UpdatedAt:         u.UpdatedAt(),
	}

	if home := u.Home(); home != nil {
		lat := home.Lat()
		lng := home.Lng()
		dto.HomeLat = &lat
		dto.HomeLng = &lng
	}

	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var home *kernel.GeoPoint
	if dto.HomeLat != nil && dto.HomeLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.HomeLat, *dto.HomeLng)
		if pointErr != nil {
			return nil, pointErr
		}
		home = &point
	}

	return user.RestoreUser(
		id,
		dto.Username,
		dto.Email,
		dto.PasswordHash,
		dto.Phone,
		dto.Address,
		home,
		dto.Verified,
		dto.VerificationToken,
		dto.ResetToken,
		dto.ResetTokenExpires,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
