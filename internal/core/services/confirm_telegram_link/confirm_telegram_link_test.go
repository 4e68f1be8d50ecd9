package confirmtelegramlink

import (
	"context"
	"testing"

	"calremind/internal/core/domain/logging"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

func TestValidCodeLinksChatToUser(t *testing.T) {
	// Setup ---
	unitOfWork := uow.NewFakeUnitOfWork()
	unitOfWork.Context.UserRepository.Users = append(
		unitOfWork.Context.UserRepository.Users,
		user.User{ID: 42},
	)
	_, _ = unitOfWork.Context.TelegramLinkRepository.Create(
		context.Background(),
		user.CreateTelegramLinkInput{UserID: 42, Code: "a1b2c3d4"},
	)
	service := New(logging.NewFakeLogger(), unitOfWork)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Code:   "a1b2c3d4",
		ChatID: 777,
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(user.ID(42), result.UserID)
	u, _ := unitOfWork.Context.UserRepository.GetByID(context.Background(), 42)
	assert.True(u.TelegramChatID.IsPresent)
	assert.Equal(int64(777), int64(u.TelegramChatID.Value))
	assert.True(unitOfWork.Context.WasCommitCalled)
}

func TestUnknownCodeIsRejected(t *testing.T) {
	// Setup ---
	unitOfWork := uow.NewFakeUnitOfWork()
	service := New(logging.NewFakeLogger(), unitOfWork)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Code:   "nope",
		ChatID: 777,
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrLinkCodeDoesNotExist)
}

func TestCodeCannotBeConfirmedTwice(t *testing.T) {
	// Setup ---
	unitOfWork := uow.NewFakeUnitOfWork()
	unitOfWork.Context.UserRepository.Users = append(
		unitOfWork.Context.UserRepository.Users,
		user.User{ID: 42},
	)
	link, _ := unitOfWork.Context.TelegramLinkRepository.Create(
		context.Background(),
		user.CreateTelegramLinkInput{UserID: 42, Code: "a1b2c3d4"},
	)
	_ = unitOfWork.Context.TelegramLinkRepository.Confirm(context.Background(), link.ID)
	service := New(logging.NewFakeLogger(), unitOfWork)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Code:   "a1b2c3d4",
		ChatID: 888,
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrLinkCodeDoesNotExist)
}
