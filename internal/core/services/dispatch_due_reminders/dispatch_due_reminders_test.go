package dispatchduereminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"calremind/internal/core/domain/bot"
	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/reminder"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	resolverecipients "calremind/internal/core/services/resolve_recipients"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const DELIVERY_TIMEOUT = 10 * time.Second

type fixture struct {
	unitOfWork *uow.FakeUnitOfWork
	sender     *bot.TestMessageSender
	publisher  *reminder.FakeDeliveredPublisher
}

func newFixture() *fixture {
	return &fixture{
		unitOfWork: uow.NewFakeUnitOfWork(),
		sender:     bot.NewTestMessageSender(),
		publisher:  reminder.NewFakeDeliveredPublisher(),
	}
}

func (f *fixture) service() services.Service[Input, Result] {
	log := logging.NewFakeLogger()
	resolver := resolverecipients.New(
		log,
		f.unitOfWork.Context.UserRepository,
		f.unitOfWork.Context.MembershipRepository,
	)
	return New(
		log,
		f.unitOfWork,
		resolver,
		f.sender,
		f.publisher,
		DELIVERY_TIMEOUT,
		func() time.Time { return Now },
	)
}

func (f *fixture) createUser(t *testing.T, email string, chatID c.Optional[bot.ChatID]) user.User {
	t.Helper()
	u, err := f.unitOfWork.Context.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(email),
		PasswordHash: user.PasswordHash("hash"),
		CreatedAt:    Now,
	})
	require.NoError(t, err)
	if chatID.IsPresent {
		err = f.unitOfWork.Context.UserRepository.SetTelegramChatID(context.Background(), u.ID, chatID.Value)
		require.NoError(t, err)
	}
	return u
}

func (f *fixture) createEvent(t *testing.T, ownerID user.ID, groupID c.Optional[group.ID]) event.Event {
	t.Helper()
	ev, err := f.unitOfWork.Context.EventRepository.Create(context.Background(), event.CreateInput{
		OwnerID:   ownerID,
		GroupID:   groupID,
		Title:     "dentist",
		At:        Now,
		CreatedAt: Now,
	})
	require.NoError(t, err)
	return ev
}

func (f *fixture) createReminder(t *testing.T, eventID event.ID, at time.Time) reminder.Reminder {
	t.Helper()
	created, err := f.unitOfWork.Context.ReminderRepository.CreateMany(context.Background(), reminder.CreateManyInput{
		EventID: eventID,
		Times:   []time.Time{at},
	})
	require.NoError(t, err)
	return created[0]
}

func TestDueReminderIsDeliveredAndMarkedSent(t *testing.T) {
	// Setup ---
	f := newFixture()
	owner := f.createUser(t, "owner@test.com", c.NewOptional(bot.ChatID(100), true))
	ev := f.createEvent(t, owner.ID, c.Optional[group.ID]{})
	rem := f.createReminder(t, ev.ID, Now.Add(-time.Minute))
	service := f.service()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(1, result.SentCount)
	assert.Len(f.sender.Sent, 1)
	assert.Equal(bot.ChatID(100), f.sender.Sent[0].ChatID)
	assert.Contains(f.sender.Sent[0].Text, "dentist")
	assert.True(f.unitOfWork.Context.ReminderRepository.Reminders[0].Sent)
	assert.True(f.unitOfWork.Context.WasCommitCalled)
	assert.Len(f.publisher.Published, 1)
	assert.Equal(rem.ID, f.publisher.Published[0].ReminderID)
}

func TestReminderDueExactlyAtReferenceInstantIsDelivered(t *testing.T) {
	// Setup ---
	f := newFixture()
	owner := f.createUser(t, "owner@test.com", c.NewOptional(bot.ChatID(100), true))
	ev := f.createEvent(t, owner.ID, c.Optional[group.ID]{})
	f.createReminder(t, ev.ID, Now)
	service := f.service()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(1, result.SentCount)
}

func TestFutureReminderIsNotDelivered(t *testing.T) {
	// Setup ---
	f := newFixture()
	owner := f.createUser(t, "owner@test.com", c.NewOptional(bot.ChatID(100), true))
	ev := f.createEvent(t, owner.ID, c.Optional[group.ID]{})
	f.createReminder(t, ev.ID, Now.Add(time.Second))
	service := f.service()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(0, result.SentCount)
	assert.Empty(f.sender.Sent)
}

func TestSecondPassDeliversNothing(t *testing.T) {
	// Setup ---
	f := newFixture()
	owner := f.createUser(t, "owner@test.com", c.NewOptional(bot.ChatID(100), true))
	ev := f.createEvent(t, owner.ID, c.Optional[group.ID]{})
	f.createReminder(t, ev.ID, Now.Add(-time.Minute))
	service := f.service()

	// Exercise ---
	first, err1 := service.Run(context.Background(), Input{})
	second, err2 := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err1)
	assert.Nil(err2)
	assert.Equal(1, first.SentCount)
	assert.Equal(0, second.SentCount)
	assert.Len(f.sender.Sent, 1)
}

func TestGroupFanOutWithPartialFailureStillMarksSent(t *testing.T) {
	// Setup ---
	f := newFixture()
	owner := f.createUser(t, "owner@test.com", c.NewOptional(bot.ChatID(100), true))
	member := f.createUser(t, "member@test.com", c.NewOptional(bot.ChatID(200), true))
	unlinked := f.createUser(t, "unlinked@test.com", c.Optional[bot.ChatID]{})

	groupID := group.ID(7)
	for _, m := range []struct {
		userID user.ID
		role   group.Role
	}{
		{owner.ID, group.RoleOwner},
		{member.ID, group.RoleMember},
		{unlinked.ID, group.RoleMember},
	} {
		_, err := f.unitOfWork.Context.MembershipRepository.Create(context.Background(), group.CreateMemberInput{
			GroupID: groupID, UserID: m.userID, Role: m.role, CreatedAt: Now,
		})
		require.NoError(t, err)
	}

	ev := f.createEvent(t, owner.ID, c.NewOptional(groupID, true))
	f.createReminder(t, ev.ID, Now)
	f.sender.FailFor[bot.ChatID(200)] = errors.New("chat blocked the bot")
	service := f.service()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(1, result.SentCount)
	// Two attempts were made, one succeeded, reminder is sent anyway.
	assert.Len(f.sender.Sent, 1)
	assert.True(f.unitOfWork.Context.ReminderRepository.Reminders[0].Sent)
}

func TestAllDeliveriesFailingLeavesReminderUnsent(t *testing.T) {
	// Setup ---
	f := newFixture()
	owner := f.createUser(t, "owner@test.com", c.NewOptional(bot.ChatID(100), true))
	ev := f.createEvent(t, owner.ID, c.Optional[group.ID]{})
	f.createReminder(t, ev.ID, Now)
	f.sender.SendError = errors.New("telegram is down")
	service := f.service()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(0, result.SentCount)
	assert.False(f.unitOfWork.Context.ReminderRepository.Reminders[0].Sent)

	// The next pass retries and succeeds once the channel recovers.
	f.sender.SendError = nil
	result, err = service.Run(context.Background(), Input{})
	assert.Nil(err)
	assert.Equal(1, result.SentCount)
	assert.True(f.unitOfWork.Context.ReminderRepository.Reminders[0].Sent)
}

func TestUnlinkedRecipientDoesNotExpireReminder(t *testing.T) {
	// Setup ---
	f := newFixture()
	owner := f.createUser(t, "owner@test.com", c.Optional[bot.ChatID]{})
	ev := f.createEvent(t, owner.ID, c.Optional[group.ID]{})
	f.createReminder(t, ev.ID, Now)
	service := f.service()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(0, result.SentCount)
	assert.False(f.unitOfWork.Context.ReminderRepository.Reminders[0].Sent)

	// Linking the chat later makes a later pass deliver.
	err = f.unitOfWork.Context.UserRepository.SetTelegramChatID(context.Background(), owner.ID, bot.ChatID(100))
	assert.Nil(err)
	result, err = service.Run(context.Background(), Input{})
	assert.Nil(err)
	assert.Equal(1, result.SentCount)
	assert.Len(f.sender.Sent, 1)
}

func TestOrphanedReminderIsSkippedSilently(t *testing.T) {
	// Setup ---
	f := newFixture()
	owner := f.createUser(t, "owner@test.com", c.NewOptional(bot.ChatID(100), true))
	ev := f.createEvent(t, owner.ID, c.Optional[group.ID]{})
	f.createReminder(t, ev.ID, Now)
	require.NoError(t, f.unitOfWork.Context.EventRepository.Delete(context.Background(), ev.ID))
	service := f.service()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(0, result.SentCount)
	assert.Empty(f.sender.Sent)
}

func TestScanErrorFailsWholePass(t *testing.T) {
	// Setup ---
	f := newFixture()
	f.unitOfWork.Context.ReminderRepository.ReturnError = true
	service := f.service()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.NotNil(err)
	assert.False(f.unitOfWork.Context.WasCommitCalled)
	assert.True(f.unitOfWork.Context.WasRollbackCalled)
}

func TestPublisherErrorDoesNotFailPass(t *testing.T) {
	// Setup ---
	f := newFixture()
	owner := f.createUser(t, "owner@test.com", c.NewOptional(bot.ChatID(100), true))
	ev := f.createEvent(t, owner.ID, c.Optional[group.ID]{})
	f.createReminder(t, ev.ID, Now)
	f.publisher.PublishError = errors.New("amqp connection lost")
	service := f.service()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(1, result.SentCount)
	assert.True(f.unitOfWork.Context.ReminderRepository.Reminders[0].Sent)
}
