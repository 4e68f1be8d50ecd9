package resolverecipients

import (
	"context"
	"testing"
	"time"

	"calremind/internal/core/domain/bot"
	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func createUser(t *testing.T, repo *user.FakeUserRepository, chatID c.Optional[bot.ChatID]) user.User {
	t.Helper()
	u, err := repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail("user@test.com"),
		PasswordHash: user.PasswordHash("hash"),
		CreatedAt:    Now,
	})
	require.NoError(t, err)
	if chatID.IsPresent {
		require.NoError(t, repo.SetTelegramChatID(context.Background(), u.ID, chatID.Value))
	}
	u, err = repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	return u
}

func TestPersonalEventResolvesToLinkedOwner(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	userRepo := user.NewFakeUserRepository()
	membershipRepo := group.NewFakeMembershipRepository()
	owner := createUser(t, userRepo, c.NewOptional(bot.ChatID(100), true))
	service := New(log, userRepo, membershipRepo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Event: event.Event{ID: 1, OwnerID: owner.ID, Title: "dentist", At: Now},
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]bot.ChatID{100}, result.ChatIDs)
}

func TestPersonalEventWithUnlinkedOwnerResolvesToNothing(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	userRepo := user.NewFakeUserRepository()
	membershipRepo := group.NewFakeMembershipRepository()
	owner := createUser(t, userRepo, c.Optional[bot.ChatID]{})
	service := New(log, userRepo, membershipRepo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Event: event.Event{ID: 1, OwnerID: owner.ID, Title: "dentist", At: Now},
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Empty(result.ChatIDs)
}

func TestPersonalEventWithDeletedOwnerResolvesToNothing(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	userRepo := user.NewFakeUserRepository()
	membershipRepo := group.NewFakeMembershipRepository()
	service := New(log, userRepo, membershipRepo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Event: event.Event{ID: 1, OwnerID: user.ID(404), Title: "dentist", At: Now},
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Empty(result.ChatIDs)
}

func TestSharedEventResolvesToAllLinkedMembers(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	userRepo := user.NewFakeUserRepository()
	membershipRepo := group.NewFakeMembershipRepository()

	owner := createUser(t, userRepo, c.NewOptional(bot.ChatID(100), true))
	linkedMember := createUser(t, userRepo, c.NewOptional(bot.ChatID(200), true))
	unlinkedMember := createUser(t, userRepo, c.Optional[bot.ChatID]{})

	groupID := group.ID(7)
	for _, m := range []struct {
		userID user.ID
		role   group.Role
	}{
		{owner.ID, group.RoleOwner},
		{linkedMember.ID, group.RoleMember},
		{unlinkedMember.ID, group.RoleMember},
	} {
		_, err := membershipRepo.Create(context.Background(), group.CreateMemberInput{
			GroupID:   groupID,
			UserID:    m.userID,
			Role:      m.role,
			CreatedAt: Now,
		})
		require.NoError(t, err)
	}

	service := New(log, userRepo, membershipRepo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Event: event.Event{
			ID:      1,
			OwnerID: owner.ID,
			GroupID: c.NewOptional(groupID, true),
			Title:   "standup",
			At:      Now,
		},
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.ElementsMatch([]bot.ChatID{100, 200}, result.ChatIDs)
}

func TestSharedEventDoesNotLeakToOtherGroups(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	userRepo := user.NewFakeUserRepository()
	membershipRepo := group.NewFakeMembershipRepository()

	owner := createUser(t, userRepo, c.NewOptional(bot.ChatID(100), true))
	outsider := createUser(t, userRepo, c.NewOptional(bot.ChatID(300), true))
	_, err := membershipRepo.Create(context.Background(), group.CreateMemberInput{
		GroupID: group.ID(7), UserID: owner.ID, Role: group.RoleOwner, CreatedAt: Now,
	})
	require.NoError(t, err)
	_, err = membershipRepo.Create(context.Background(), group.CreateMemberInput{
		GroupID: group.ID(8), UserID: outsider.ID, Role: group.RoleOwner, CreatedAt: Now,
	})
	require.NoError(t, err)

	service := New(log, userRepo, membershipRepo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Event: event.Event{
			ID:      1,
			OwnerID: owner.ID,
			GroupID: c.NewOptional(group.ID(7), true),
			Title:   "standup",
			At:      Now,
		},
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]bot.ChatID{100}, result.ChatIDs)
}
