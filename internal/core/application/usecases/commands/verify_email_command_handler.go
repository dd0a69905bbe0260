package commands

import (
	"context"
	"time"
)

// VerifyEmailCommandHandler confirms a customer's email address from the
// token mailed at signup.
type VerifyEmailCommandHandler struct {
	uowFactory UserUoWFactory
	now        func() time.Time
}

// NewVerifyEmailCommandHandler creates a handler for email verification.
func NewVerifyEmailCommandHandler(uowFactory UserUoWFactory) VerifyEmailCommandHandler {
	return VerifyEmailCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the verification command.
func (h *VerifyEmailCommandHandler) Handle(ctx context.Context, cmd VerifyEmailCommand) error {
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

	account, err := uow.UserRepository().GetByVerificationToken(ctx, cmd.Token())
	if err != nil {
		return err
	}

	account.MarkVerified(h.now())

	if err = uow.UserRepository().Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
