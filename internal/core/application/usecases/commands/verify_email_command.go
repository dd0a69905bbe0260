package commands

import (
	"errors"

	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrVerifyEmailCommandIsNotConstructed = errors.New(
	"VerifyEmailCommand must be created via NewVerifyEmailCommand constructor",
)

// VerifyEmailCommand represents a customer following their email
// verification link.
type VerifyEmailCommand struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewVerifyEmailCommand creates a validated verification command.
func NewVerifyEmailCommand(token string) (VerifyEmailCommand, error) {
	cmd := VerifyEmailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setToken(token); err != nil {
		return VerifyEmailCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyEmailCommand) Validate() error {
	return c.guard.Validate(ErrVerifyEmailCommandIsNotConstructed)
}

func (c VerifyEmailCommand) Token() string { return c.token }

func (c *VerifyEmailCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	c.token = token
	return nil
}
