package queries

import (
	"context"

	"gorm.io/gorm"

	"veggo/internal/pkg/errs"
)

// GetUserProfileQueryHandler retrieves a single customer profile.
type GetUserProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetUserProfileQueryHandler creates a handler for profile lookups.
func NewGetUserProfileQueryHandler(db *gorm.DB) GetUserProfileQueryHandler {
	return GetUserProfileQueryHandler{db: db}
}

// Handle executes the profile lookup.
func (h GetUserProfileQueryHandler) Handle(ctx context.Context, query GetUserProfileQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	var views []UserView
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, phone, address, home_lat, home_lng, verified, created_at
		FROM users
		WHERE id = ?
	`, query.UserID().String()).Scan(&views).Error
	if err != nil {
		return UserView{}, err
	}
	if len(views) == 0 {
		return UserView{}, errs.NewObjectNotFoundError("userId", query.UserID().String())
	}

	return views[0], nil
}
