package commands

import (
	"context"
	"errors"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/ports"
	"veggo/internal/pkg/errs"
)

// Reset links stay valid for an hour.
const resetTokenTTL = time.Hour

// RequestPasswordResetCommandHandler issues a password reset token and
// mails it out. An unknown email is not an error to the caller, so the
// endpoint cannot be used to probe which addresses have accounts.
type RequestPasswordResetCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.NotificationSink
	now        func() time.Time
}

// NewRequestPasswordResetCommandHandler creates a handler for reset requests.
func NewRequestPasswordResetCommandHandler(
	uowFactory UserUoWFactory,
	notifier ports.NotificationSink,
) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the reset request command.
func (h *RequestPasswordResetCommandHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) error {
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

	account, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	now := h.now()
	token := kernel.NewUUID().String()
	if err = account.IssueResetToken(token, now.Add(resetTokenTTL), now); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.PasswordResetRequested(ctx, account, token)
	return nil
}
