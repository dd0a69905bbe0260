package commands

import (
	"errors"

	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
	"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
)

// RequestPasswordResetCommand represents a customer asking for a password
// reset link.
type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewRequestPasswordResetCommand creates a validated reset request command.
func NewRequestPasswordResetCommand(email string) (RequestPasswordResetCommand, error) {
	cmd := RequestPasswordResetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEmail(email); err != nil {
		return RequestPasswordResetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

func (c RequestPasswordResetCommand) Email() string { return c.email }

func (c *RequestPasswordResetCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
