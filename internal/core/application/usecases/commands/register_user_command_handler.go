package commands

import (
	"context"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/user"
	"veggo/internal/core/ports"
)

// RegisterUserCommandHandler creates a customer account and kicks off email
// verification.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	notifier   ports.NotificationSink
	now        func() time.Time
}

// NewRegisterUserCommandHandler creates a handler for customer signup.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	notifier ports.NotificationSink,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the signup command and returns the created account.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	verificationToken := kernel.NewUUID().String()
	account, err := user.NewUser(
		cmd.UserID(),
		cmd.Username(),
		cmd.Email(),
		hash,
		cmd.Phone(),
		cmd.Address(),
		cmd.Home(),
		verificationToken,
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, account); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.VerificationRequested(ctx, account, verificationToken)
	return account, nil
}
