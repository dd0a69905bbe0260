package commands

import (
	"context"
	"time"
)

// UpdateProfileCommandHandler applies a partial edit to a customer profile.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
	now        func() time.Time
}

// NewUpdateProfileCommandHandler creates a handler for profile edits.
func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the profile edit command.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = account.ApplyProfile(cmd.Update(), h.now()); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
