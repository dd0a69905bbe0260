package ports

import (
	"context"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for customer accounts.
type UserRepository interface {
	// Add persists a new user. Returns errs.ConflictError when the email
	// or username is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by login email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetByVerificationToken retrieves the user holding the given email
	// verification token.
	GetByVerificationToken(ctx context.Context, token string) (*user.User, error)

	// GetByResetToken retrieves the user holding the given password reset
	// token, expired or not.
	GetByResetToken(ctx context.Context, token string) (*user.User, error)

	// GetAll retrieves every registered user.
	GetAll(ctx context.Context) ([]*user.User, error)

	// PurgeExpiredResetTokens clears reset tokens whose expiry is before
	// the cutoff. Returns the number of accounts touched.
	PurgeExpiredResetTokens(ctx context.Context, cutoff time.Time) (int64, error)
}
