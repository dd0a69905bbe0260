package commands

import (
	"context"
	"time"
)

// PurgeResetTokensCommandHandler clears expired password reset tokens.
type PurgeResetTokensCommandHandler struct {
	uowFactory UserUoWFactory
	now        func() time.Time
}

// NewPurgeResetTokensCommandHandler creates a handler for reset token
// housekeeping.
func NewPurgeResetTokensCommandHandler(uowFactory UserUoWFactory) PurgeResetTokensCommandHandler {
	return PurgeResetTokensCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the housekeeping command and returns the number of
// accounts whose token was cleared.
func (h *PurgeResetTokensCommandHandler) Handle(ctx context.Context, cmd PurgeResetTokensCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.UserRepository().PurgeExpiredResetTokens(ctx, h.now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
