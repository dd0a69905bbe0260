package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// UserView is the read model for customer listings. Password hashes and
// pending tokens never leave the write side.
type UserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	HomeLat   *float64  `json:"home_lat"`
	HomeLng   *float64  `json:"home_lng"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// GetAllUsersQueryHandler retrieves registered customers for back office
// views.
type GetAllUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllUsersQueryHandler creates a handler for customer listings.
func NewGetAllUsersQueryHandler(db *gorm.DB) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db}
}

// Handle executes the customer listing.
func (h GetAllUsersQueryHandler) Handle(ctx context.Context, query GetAllUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var views []UserView
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, phone, address, home_lat, home_lng, verified, created_at
		FROM users
		ORDER BY created_at DESC
	`).Scan(&views).Error
	if err != nil {
		return nil, err
	}

	return views, nil
}
