package updateevent

import (
	"context"
	"testing"
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/reminder"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"

	"github.com/stretchr/testify/require"
)

var EventAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
var NewEventAt = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	unitOfWork *uow.FakeUnitOfWork
	service    services.Service[Input, Result]
}

func newFixture() fixture {
	unitOfWork := uow.NewFakeUnitOfWork()
	return fixture{
		unitOfWork: unitOfWork,
		service:    New(logging.NewFakeLogger(), unitOfWork),
	}
}

func (f fixture) createEvent(ownerID user.ID) event.Event {
	ev, _ := f.unitOfWork.Context.EventRepository.Create(
		context.Background(),
		event.CreateInput{OwnerID: ownerID, Title: "dentist", At: EventAt},
	)
	return ev
}

func (f fixture) createReminders(eventID event.ID, times ...time.Time) {
	_, _ = f.unitOfWork.Context.ReminderRepository.CreateMany(
		context.Background(),
		reminder.CreateManyInput{EventID: eventID, Times: times},
	)
}

func TestUpdateReplacesEventFieldsAndReminders(t *testing.T) {
	// Setup ---
	f := newFixture()
	ev := f.createEvent(1)
	f.createReminders(ev.ID, EventAt, EventAt.Add(-30*time.Minute))

	// Exercise ---
	result, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 1},
		EventID: ev.ID,
		Title:   "dentist (rescheduled)",
		At:      NewEventAt,
		Offsets: reminder.Offsets{60},
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("dentist (rescheduled)", result.Event.Title)
	assert.Equal(NewEventAt, result.Event.At)
	assert.Len(result.Reminders, 2)
	times := []time.Time{result.Reminders[0].At, result.Reminders[1].At}
	assert.ElementsMatch(
		[]time.Time{NewEventAt, NewEventAt.Add(-60 * time.Minute)},
		times,
	)
	stored, _ := f.unitOfWork.Context.ReminderRepository.ListByEvent(
		context.Background(), ev.ID,
	)
	assert.Len(stored, 2)
	assert.True(f.unitOfWork.Context.WasCommitCalled)
}

func TestUpdateResetsSentFlags(t *testing.T) {
	// Setup ---
	f := newFixture()
	ev := f.createEvent(1)
	f.createReminders(ev.ID, EventAt)
	stored, _ := f.unitOfWork.Context.ReminderRepository.ListByEvent(
		context.Background(), ev.ID,
	)
	_, _ = f.unitOfWork.Context.ReminderRepository.MarkSent(
		context.Background(), stored[0].ID,
	)

	// Exercise ---
	result, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 1},
		EventID: ev.ID,
		Title:   "dentist",
		At:      NewEventAt,
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Len(result.Reminders, 1)
	assert.False(result.Reminders[0].Sent)
}

func TestUpdateOfAnotherUsersEventIsRejected(t *testing.T) {
	// Setup ---
	f := newFixture()
	ev := f.createEvent(1)

	// Exercise ---
	_, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 2},
		EventID: ev.ID,
		Title:   "hijacked",
		At:      NewEventAt,
	})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, event.ErrEventDoesNotExist)
	assert.False(f.unitOfWork.Context.WasCommitCalled)
}

func TestUpdateToGroupRequiresMembership(t *testing.T) {
	// Setup ---
	f := newFixture()
	ev := f.createEvent(1)

	// Exercise ---
	_, err := f.service.Run(context.Background(), Input{
		User:    user.User{ID: 1},
		EventID: ev.ID,
		GroupID: c.NewOptional(group.ID(7), true),
		Title:   "team sync",
		At:      NewEventAt,
	})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, group.ErrMemberDoesNotExist)
	assert.False(f.unitOfWork.Context.WasCommitCalled)
}
