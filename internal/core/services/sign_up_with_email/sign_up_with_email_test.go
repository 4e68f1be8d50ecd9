package signupwithemail

import (
	"context"
	"testing"
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/logging"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"

	"github.com/stretchr/testify/require"
)

const ActivationToken = "test-activation-token"

var Now = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	unitOfWork *uow.FakeUnitOfWork
	sender     *user.FakeActivationTokenSender
	service    services.Service[Input, Result]
}

func newFixture() fixture {
	unitOfWork := uow.NewFakeUnitOfWork()
	sender := user.NewFakeActivationTokenSender()
	return fixture{
		unitOfWork: unitOfWork,
		sender:     sender,
		service: New(
			logging.NewFakeLogger(),
			unitOfWork,
			user.NewFakePasswordHasher(),
			user.NewFakeActivationTokenGenerator(ActivationToken),
			sender,
			func() time.Time { return Now },
		),
	}
}

func TestUserIsCreatedInactiveWithActivationToken(t *testing.T) {
	// Setup ---
	f := newFixture()

	// Exercise ---
	result, err := f.service.Run(context.Background(), Input{
		Email:    c.NewEmail("Test@Example.com"),
		Password: "top-secret",
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(c.Email("test@example.com"), result.User.Email)
	assert.False(result.User.IsActive())
	assert.True(result.User.ActivationToken.IsPresent)
	assert.Equal(user.ActivationToken(ActivationToken), result.User.ActivationToken.Value)
	assert.NotEqual(user.PasswordHash("top-secret"), result.User.PasswordHash)
	assert.True(f.unitOfWork.Context.WasCommitCalled)
}

func TestActivationTokenIsSentToNewUser(t *testing.T) {
	// Setup ---
	f := newFixture()

	// Exercise ---
	result, err := f.service.Run(context.Background(), Input{
		Email:    c.NewEmail("test@example.com"),
		Password: "top-secret",
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Len(f.sender.Sent, 1)
	assert.Equal(result.User.ID, f.sender.Sent[0].ID)
}

func TestDuplicateEmailIsRejected(t *testing.T) {
	// Setup ---
	f := newFixture()
	_, err := f.service.Run(context.Background(), Input{
		Email:    c.NewEmail("test@example.com"),
		Password: "top-secret",
	})
	require.Nil(t, err)

	// Exercise ---
	_, err = f.service.Run(context.Background(), Input{
		Email:    c.NewEmail("test@example.com"),
		Password: "another-secret",
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestSendFailureDoesNotFailSignUp(t *testing.T) {
	// Setup ---
	f := newFixture()
	f.sender.ReturnError = true

	// Exercise ---
	result, err := f.service.Run(context.Background(), Input{
		Email:    c.NewEmail("test@example.com"),
		Password: "top-secret",
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.NotZero(result.User.ID)
	assert.True(f.unitOfWork.Context.WasCommitCalled)
}
