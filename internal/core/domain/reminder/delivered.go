package reminder

import (
	"context"
	"time"

	"calremind/internal/core/domain/bot"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/user"
)

// DeliveredEvent describes one reminder that has just been marked sent.
// It is published for observability consumers (audit queue, in-browser
// notification stream); delivery of the reminder itself does not depend
// on any publisher succeeding.
type DeliveredEvent struct {
	ReminderID ID
	EventID    event.ID
	EventTitle string
	OwnerID    user.ID
	ChatIDs    []bot.ChatID
	SentAt     time.Time
}

type DeliveredPublisher interface {
	PublishDelivered(ctx context.Context, e DeliveredEvent) error
}
