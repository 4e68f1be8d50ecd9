package deliveryevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/reminder"

	"github.com/r3labs/sse/v2"
)

type sseNotification struct {
	ReminderID int64     `json:"reminder_id"`
	EventID    int64     `json:"event_id"`
	EventTitle string    `json:"event_title"`
	SentAt     time.Time `json:"sent_at"`
}

// SSENotifier pushes a delivery notification onto the owner's
// server-sent-events stream so an open browser tab sees the reminder
// the moment the bot does.
type SSENotifier struct {
	sseServer *sse.Server
}

func NewSSENotifier(sseServer *sse.Server) *SSENotifier {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SSENotifier{sseServer: sseServer}
}

func (n *SSENotifier) PublishDelivered(ctx context.Context, d reminder.DeliveredEvent) error {
	data, err := json.Marshal(sseNotification{
		ReminderID: int64(d.ReminderID),
		EventID:    int64(d.EventID),
		EventTitle: d.EventTitle,
		SentAt:     d.SentAt,
	})
	if err != nil {
		return err
	}
	streamID := fmt.Sprintf("%d", d.OwnerID)
	n.sseServer.Publish(streamID, &sse.Event{Data: data})
	return nil
}

// Fanout forwards every delivered event to all wrapped publishers and
// reports the first error after trying each one.
type Fanout struct {
	publishers []reminder.DeliveredPublisher
}

func NewFanout(publishers ...reminder.DeliveredPublisher) *Fanout {
	return &Fanout{publishers: publishers}
}

func (f *Fanout) PublishDelivered(ctx context.Context, d reminder.DeliveredEvent) error {
	var firstErr error
	for _, p := range f.publishers {
		if err := p.PublishDelivered(ctx, d); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
