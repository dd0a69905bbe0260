package commands

import (
	"errors"

	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

// ResetPasswordCommand represents a customer redeeming a reset token for a
// new password.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	token       string
	newPassword string

	guard guard.ConstructorGuard
}

// NewResetPasswordCommand creates a validated password reset command.
func NewResetPasswordCommand(token, newPassword string) (ResetPasswordCommand, error) {
	cmd := ResetPasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ResetPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

func (c ResetPasswordCommand) Token() string       { return c.token }
func (c ResetPasswordCommand) NewPassword() string { return c.newPassword }

func (c *ResetPasswordCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	c.token = token
	return nil
}

func (c *ResetPasswordCommand) setNewPassword(newPassword string) error {
	if len(newPassword) < 6 {
		return errs.NewValueIsInvalidErrorWithCause("password",
			errors.New("must be at least 6 characters"))
	}
	c.newPassword = newPassword
	return nil
}
