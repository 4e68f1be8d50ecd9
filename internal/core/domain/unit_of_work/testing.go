package uow

import (
	"context"

	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/reminder"
	"calremind/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository         *user.FakeUserRepository
	SessionRepository      *user.FakeSessionRepository
	TelegramLinkRepository *user.FakeTelegramLinkRepository
	GroupRepository        *group.FakeGroupRepository
	MembershipRepository   *group.FakeMembershipRepository
	EventRepository        *event.FakeEventRepository
	ReminderRepository     *reminder.FakeReminderRepository
	BeginError             error
	CommitError            error
	WasRollbackCalled      bool
	WasCommitCalled        bool
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	if c.CommitError != nil {
		return c.CommitError
	}
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) TelegramLinks() user.TelegramLinkRepository {
	return c.TelegramLinkRepository
}

func (c *FakeUnitOfWorkContext) Groups() group.GroupRepository {
	return c.GroupRepository
}

func (c *FakeUnitOfWorkContext) Memberships() group.MembershipRepository {
	return c.MembershipRepository
}

func (c *FakeUnitOfWorkContext) Events() event.EventRepository {
	return c.EventRepository
}

func (c *FakeUnitOfWorkContext) Reminders() reminder.ReminderRepository {
	return c.ReminderRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	userRepository := user.NewFakeUserRepository()
	membershipRepository := group.NewFakeMembershipRepository()
	return &FakeUnitOfWork{
		Context: &FakeUnitOfWorkContext{
			UserRepository:         userRepository,
			SessionRepository:      user.NewFakeSessionRepository(userRepository),
			TelegramLinkRepository: user.NewFakeTelegramLinkRepository(),
			GroupRepository:        group.NewFakeGroupRepository(membershipRepository),
			MembershipRepository:   membershipRepository,
			EventRepository:        event.NewFakeEventRepository(),
			ReminderRepository:     reminder.NewFakeReminderRepository(),
		},
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.Context.BeginError != nil {
		return nil, u.Context.BeginError
	}
	return u.Context, nil
}
