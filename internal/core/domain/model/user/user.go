// Package user defines the customer account aggregate: profile details, an
// optional home location, and the email-verification / password-reset tokens
// the notification flows hang off.
package user

import (
	"errors"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User bypassed its constructors.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a customer account.
type User struct {
	id                kernel.UUID
	username          string
	email             string
	passwordHash      string
	phone             string
	address           string
	home              *kernel.GeoPoint
	verified          bool
	verificationToken string
	resetToken        string
	resetTokenExpires *time.Time
	createdAt         time.Time
	updatedAt         time.Time

	isConstructed bool
}

// NewUser registers a new, unverified customer. verificationToken is the
// opaque token mailed out for email verification.
func NewUser(
	id kernel.UUID,
	username string,
	email string,
	passwordHash string,
	phone string,
	address string,
	home *kernel.GeoPoint,
	verificationToken string,
	now time.Time,
) (*User, error) {
	u := &User{
		phone:             phone,
		address:           address,
		verified:          false,
		verificationToken: verificationToken,
		createdAt:         now,
		updatedAt:         now,
		isConstructed:     true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setHome(home),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rehydrates a user from persistence.
func RestoreUser(
	id kernel.UUID,
	username string,
	email string,
	passwordHash string,
	phone string,
	address string,
	home *kernel.GeoPoint,
	verified bool,
	verificationToken string,
	resetToken string,
	resetTokenExpires *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*User, error) {
	u, err := NewUser(id, username, email, passwordHash, phone, address, home, verificationToken, createdAt)
	if err != nil {
		return nil, err
	}
	u.verified = verified
	u.resetToken = resetToken
	u.resetTokenExpires = resetTokenExpires
	u.updatedAt = updatedAt
	return u, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID               { return u.id }
func (u *User) Username() string              { return u.username }
func (u *User) Email() string                 { return u.email }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Phone() string                 { return u.phone }
func (u *User) Address() string               { return u.address }
func (u *User) Home() *kernel.GeoPoint        { return u.home }
func (u *User) IsVerified() bool              { return u.verified }
func (u *User) VerificationToken() string     { return u.verificationToken }
func (u *User) ResetToken() string            { return u.resetToken }
func (u *User) ResetTokenExpires() *time.Time { return u.resetTokenExpires }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }

// MarkVerified confirms the account email and clears the verification token.
func (u *User) MarkVerified(now time.Time) {
	u.verified = true
	u.verificationToken = ""
	u.updatedAt = now
}

// IssueResetToken attaches a password-reset token valid until expires.
func (u *User) IssueResetToken(token string, expires time.Time, now time.Time) error {
	if token == "" {
		return errs.NewValueIsRequiredError("resetToken")
	}
	u.resetToken = token
	u.resetTokenExpires = &expires
	u.updatedAt = now
	return nil
}

// ResetPassword swaps the password hash using a previously issued reset
// token. The token must match and must not be expired.
func (u *User) ResetPassword(token string, newHash string, now time.Time) error {
	if u.resetToken == "" || token != u.resetToken {
		return errs.NewValueIsInvalidErrorWithCause("resetToken", errors.New("token mismatch"))
	}
	if u.resetTokenExpires == nil || now.After(*u.resetTokenExpires) {
		return errs.NewValueIsInvalidErrorWithCause("resetToken", errors.New("token expired"))
	}
	if err := u.setPasswordHash(newHash); err != nil {
		return err
	}
	u.resetToken = ""
	u.resetTokenExpires = nil
	u.updatedAt = now
	return nil
}

// ProfileUpdate carries optional profile edits; nil fields are untouched.
type ProfileUpdate struct {
	Username *string
	Phone    *string
	Address  *string
	Home     *kernel.GeoPoint
}

// ApplyProfile mutates the user with the non-nil fields of the update.
func (u *User) ApplyProfile(p ProfileUpdate, now time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}

	if p.Username != nil {
		if err := u.setUsername(*p.Username); err != nil {
			return err
		}
	}
	if p.Phone != nil {
		u.phone = *p.Phone
	}
	if p.Address != nil {
		u.address = *p.Address
	}
	if p.Home != nil {
		if err := u.setHome(p.Home); err != nil {
			return err
		}
	}

	u.updatedAt = now
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setHome(home *kernel.GeoPoint) error {
	if home != nil {
		if err := home.Validate(); err != nil {
			return err
		}
	}
	u.home = home
	return nil
}
