package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"veggo/internal/core/application/usecases/commands"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
)

func testRegisterUserCommand(t *testing.T) commands.RegisterUserCommand {
	t.Helper()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "asha", "asha@example.com", "s3cret",
		"+911234567890", "12 Lodhi Road", nil)
	require.NoError(t, err)
	return cmd
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := testRegisterUserCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hash", nil).Once()

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once()

	notifier := new(MockNotificationSink)
	notifier.On("VerificationRequested", ctx, mock.Anything, mock.AnythingOfType("string")).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher, notifier)
	account, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "$2a$10$hash", account.PasswordHash())
	assert.False(t, account.IsVerified())
	assert.NotEmpty(t, account.VerificationToken())
	notifier.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd := testRegisterUserCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hash", nil).Once()

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("Add", ctx, mock.Anything).
		Return(errs.NewConflictError("email already registered")).Once()

	notifier := new(MockNotificationSink)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher, notifier)
	account, err := h.Handle(ctx, cmd)

	assert.Nil(t, account)
	assert.ErrorIs(t, err, errs.ErrConflict)
	notifier.AssertNotCalled(t, "VerificationRequested", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterUserCommandHandler_Handle_ShortPasswordRejected(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "asha", "asha@example.com", "short",
		"", "", nil)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestResetPasswordCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	account := testCustomer(t)
	now := account.CreatedAt()
	require.NoError(t, account.IssueResetToken("reset-tok", now.Add(time.Hour), now))

	cmd, err := commands.NewResetPasswordCommand("reset-tok", "newpass1")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "newpass1").Return("$2a$10$new", nil).Once()

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("GetByResetToken", ctx, "reset-tok").Return(account, nil).Once()
	userRepo.On("Update", ctx, account).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetPasswordCommandHandler(factory, hasher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$new", account.PasswordHash())
	assert.Empty(t, account.ResetToken())
}
