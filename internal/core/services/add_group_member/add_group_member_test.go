package addgroupmember

import (
	"context"
	"testing"
	"time"

	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	unitOfWork *uow.FakeUnitOfWork
	service    services.Service[Input, Result]
}

func newFixture() fixture {
	unitOfWork := uow.NewFakeUnitOfWork()
	return fixture{
		unitOfWork: unitOfWork,
		service:    New(logging.NewFakeLogger(), unitOfWork, func() time.Time { return Now }),
	}
}

func (f fixture) createUser(id user.ID) {
	f.unitOfWork.Context.UserRepository.Users = append(
		f.unitOfWork.Context.UserRepository.Users,
		user.User{ID: id},
	)
}

func (f fixture) enroll(groupID group.ID, userID user.ID, role group.Role) {
	_, _ = f.unitOfWork.Context.MembershipRepository.Create(
		context.Background(),
		group.CreateMemberInput{GroupID: groupID, UserID: userID, Role: role},
	)
}

func TestAdminCanAddMember(t *testing.T) {
	// Setup ---
	f := newFixture()
	f.createUser(1)
	f.createUser(2)
	f.enroll(7, 1, group.RoleAdmin)

	// Exercise ---
	result, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 1},
		GroupID: 7,
		UserID:  2,
		Role:    group.RoleMember,
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(user.ID(2), result.Member.UserID)
	assert.Equal(group.RoleMember, result.Member.Role)
	assert.True(f.unitOfWork.Context.WasCommitCalled)
}

func TestPlainMemberCannotAddMember(t *testing.T) {
	// Setup ---
	f := newFixture()
	f.createUser(1)
	f.createUser(2)
	f.enroll(7, 1, group.RoleMember)

	// Exercise ---
	_, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 1},
		GroupID: 7,
		UserID:  2,
		Role:    group.RoleMember,
	})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, group.ErrPermissionDenied)
	assert.False(f.unitOfWork.Context.WasCommitCalled)
}

func TestNonMemberCannotAddMember(t *testing.T) {
	// Setup ---
	f := newFixture()
	f.createUser(1)
	f.createUser(2)

	// Exercise ---
	_, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 1},
		GroupID: 7,
		UserID:  2,
		Role:    group.RoleMember,
	})

	// Verify ---
	require.ErrorIs(t, err, group.ErrMemberDoesNotExist)
}

func TestUnknownUserCannotBeAdded(t *testing.T) {
	// Setup ---
	f := newFixture()
	f.createUser(1)
	f.enroll(7, 1, group.RoleOwner)

	// Exercise ---
	_, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 1},
		GroupID: 7,
		UserID:  99,
		Role:    group.RoleMember,
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
}

func TestInvalidRoleIsRejected(t *testing.T) {
	// Setup ---
	f := newFixture()
	f.createUser(1)
	f.createUser(2)
	f.enroll(7, 1, group.RoleOwner)

	// Exercise ---
	_, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 1},
		GroupID: 7,
		UserID:  2,
		Role:    group.Role("superuser"),
	})

	// Verify ---
	require.ErrorIs(t, err, group.ErrInvalidRole)
}
