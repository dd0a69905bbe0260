package commands

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/user"
	"veggo/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a customer's partial profile edit.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	update user.ProfileUpdate

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a validated profile edit command.
func NewUpdateProfileCommand(userID kernel.UUID, update user.ProfileUpdate) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		update: update,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) UserID() kernel.UUID        { return c.userID }
func (c UpdateProfileCommand) Update() user.ProfileUpdate { return c.update }

func (c *UpdateProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
