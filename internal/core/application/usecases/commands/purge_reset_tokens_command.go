package commands

import (
	"errors"

	"veggo/internal/pkg/guard"
)

var ErrPurgeResetTokensCommandIsNotConstructed = errors.New(
	"PurgeResetTokensCommand must be created via NewPurgeResetTokensCommand constructor",
)

// PurgeResetTokensCommand clears password reset tokens that expired before
// the moment of execution. Scheduled housekeeping; carries no parameters.
type PurgeResetTokensCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewPurgeResetTokensCommand creates a validated housekeeping command.
func NewPurgeResetTokensCommand() (PurgeResetTokensCommand, error) {
	return PurgeResetTokensCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeResetTokensCommand) Validate() error {
	return c.guard.Validate(ErrPurgeResetTokensCommandIsNotConstructed)
}
