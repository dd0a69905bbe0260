package userrepo

import (
	"context"
	"errors"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/user"
	"veggo/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database. A taken email or username surfaces
// as a ConflictError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("email or username already registered", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing user to the database.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewConflictErrorWithCause("email or username already registered", result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "id = ?", id.Bytes(), "userId", id.String())
}

// GetByEmail retrieves a user by login email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	return r.getOne(ctx, "email = ?", email, "email", email)
}

// GetByVerificationToken retrieves the user holding the given email
// verification token.
func (r *GormUserRepository) GetByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}
	return r.getOne(ctx, "verification_token = ?", token, "token", token)
}

// GetByResetToken retrieves the user holding the given password reset token.
func (r *GormUserRepository) GetByResetToken(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}
	return r.getOne(ctx, "reset_token = ?", token, "token", token)
}

// GetAll retrieves every registered user.
func (r *GormUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// PurgeExpiredResetTokens clears reset tokens whose expiry is before the
// cutoff. Returns the number of accounts touched.
func (r *GormUserRepository) PurgeExpiredResetTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("reset_token <> '' AND reset_token_expires < ?", cutoff).
		Updates(map[string]any{
			"reset_token":         "",
			"reset_token_expires": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *GormUserRepository) getOne(
	ctx context.Context,
	cond string,
	arg any,
	paramName string,
	paramValue string,
) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, paramValue)
		}
		return nil, err
	}
	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
