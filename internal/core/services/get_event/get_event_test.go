package getevent

import (
	"context"
	"testing"
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"

	"github.com/stretchr/testify/require"
)

var EventAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	events      *event.FakeEventRepository
	memberships *group.FakeMembershipRepository
	service     services.Service[Input, Result]
}

func newFixture() fixture {
	events := event.NewFakeEventRepository()
	memberships := group.NewFakeMembershipRepository()
	return fixture{
		events:      events,
		memberships: memberships,
		service:     New(logging.NewFakeLogger(), events, memberships),
	}
}

func TestOwnerSeesPersonalEvent(t *testing.T) {
	// Setup ---
	f := newFixture()
	ev, _ := f.events.Create(context.Background(), event.CreateInput{
		OwnerID: 1, Title: "dentist", At: EventAt,
	})

	// Exercise ---
	result, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 1},
		EventID: ev.ID,
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(ev.ID, result.Event.ID)
}

func TestStrangerDoesNotSeePersonalEvent(t *testing.T) {
	// Setup ---
	f := newFixture()
	ev, _ := f.events.Create(context.Background(), event.CreateInput{
		OwnerID: 1, Title: "dentist", At: EventAt,
	})

	// Exercise ---
	_, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 2},
		EventID: ev.ID,
	})

	// Verify ---
	require.ErrorIs(t, err, event.ErrEventDoesNotExist)
}

func TestGroupMemberSeesSharedEvent(t *testing.T) {
	// Setup ---
	f := newFixture()
	ev, _ := f.events.Create(context.Background(), event.CreateInput{
		OwnerID: 1,
		GroupID: c.NewOptional(group.ID(7), true),
		Title:   "team sync",
		At:      EventAt,
	})
	_, _ = f.memberships.Create(context.Background(), group.CreateMemberInput{
		GroupID: 7, UserID: 2, Role: group.RoleMember,
	})

	// Exercise ---
	result, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 2},
		EventID: ev.ID,
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(ev.ID, result.Event.ID)
}

func TestNonMemberDoesNotSeeSharedEvent(t *testing.T) {
	// Setup ---
	f := newFixture()
	ev, _ := f.events.Create(context.Background(), event.CreateInput{
		OwnerID: 1,
		GroupID: c.NewOptional(group.ID(7), true),
		Title:   "team sync",
		At:      EventAt,
	})

	// Exercise ---
	_, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 3},
		EventID: ev.ID,
	})

	// Verify ---
	require.ErrorIs(t, err, event.ErrEventDoesNotExist)
}
