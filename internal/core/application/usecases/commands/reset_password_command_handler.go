package commands

import (
	"context"
	"time"

	"veggo/internal/core/ports"
)

// ResetPasswordCommandHandler swaps a customer's password using a reset
// token. The aggregate enforces token match and expiry.
type ResetPasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	now        func() time.Time
}

// NewResetPasswordCommandHandler creates a handler for password resets.
func NewResetPasswordCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		now:        time.Now,
	}
}

// Handle processes the password reset command.
func (h *ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
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

	account, err := uow.UserRepository().GetByResetToken(ctx, cmd.Token())
	if err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = account.ResetPassword(cmd.Token(), hash, h.now()); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
