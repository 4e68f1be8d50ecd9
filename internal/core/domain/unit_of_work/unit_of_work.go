package uow

import (
	"context"

	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/reminder"
	"calremind/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	TelegramLinks() user.TelegramLinkRepository
	Groups() group.GroupRepository
	Memberships() group.MembershipRepository
	Events() event.EventRepository
	Reminders() reminder.ReminderRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
