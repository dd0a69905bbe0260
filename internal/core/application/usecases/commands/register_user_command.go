package commands

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a customer signup. The home coordinates are
// optional; when present they must be a valid point.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	email    string
	password string
	phone    string
	address  string
	home     *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a validated signup command.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username string,
	email string,
	password string,
	phone string,
	address string,
	home *kernel.GeoPoint,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setHome(home),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID    { return c.userID }
func (c RegisterUserCommand) Username() string       { return c.username }
func (c RegisterUserCommand) Email() string          { return c.email }
func (c RegisterUserCommand) Password() string       { return c.password }
func (c RegisterUserCommand) Phone() string          { return c.phone }
func (c RegisterUserCommand) Address() string        { return c.address }
func (c RegisterUserCommand) Home() *kernel.GeoPoint { return c.home }

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < 6 {
		return errs.NewValueIsInvalidErrorWithCause("password",
			errors.New("must be at least 6 characters"))
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setHome(home *kernel.GeoPoint) error {
	if home != nil {
		if err := home.Validate(); err != nil {
			return err
		}
	}
	c.home = home
	return nil
}
