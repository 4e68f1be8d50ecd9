package reminder

import (
	"context"
	"time"

	"calremind/internal/core/domain/event"
)

type CreateManyInput struct {
	EventID event.ID
	Times   []time.Time
}

type ReminderRepository interface {
	CreateMany(ctx context.Context, input CreateManyInput) ([]Reminder, error)
	// DueUnsent returns every reminder with sent = false and a trigger
	// instant at or before asOf. Stored instants are normalized to UTC
	// before comparison; the read does not mutate state.
	DueUnsent(ctx context.Context, asOf time.Time) ([]Reminder, error)
	// MarkSent flips the sent flag and reports whether this call did the
	// flip. The update is conditional on sent = false so two racing
	// passes can never both claim the same reminder.
	MarkSent(ctx context.Context, id ID) (bool, error)
	ListByEvent(ctx context.Context, eventID event.ID) ([]Reminder, error)
	DeleteByEvent(ctx context.Context, eventID event.ID) error
}
