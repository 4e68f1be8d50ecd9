package deliveredreminders

import (
	"context"
	"encoding/json"
	"time"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/reminder"
	"calremind/internal/rabbitmq"

	"github.com/rabbitmq/amqp091-go"
)

type deliveredMessage struct {
	ReminderID int64     `json:"reminder_id"`
	EventID    int64     `json:"event_id"`
	EventTitle string    `json:"event_title"`
	OwnerID    int64     `json:"owner_id"`
	ChatIDs    []int64   `json:"chat_ids"`
	SentAt     time.Time `json:"sent_at"`
}

// RabbitMQ publishes delivered-reminder records to an audit exchange.
type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishDelivered(ctx context.Context, d reminder.DeliveredEvent) error {
	chatIDs := make([]int64, 0, len(d.ChatIDs))
	for _, chatID := range d.ChatIDs {
		chatIDs = append(chatIDs, int64(chatID))
	}
	body, err := json.Marshal(deliveredMessage{
		ReminderID: int64(d.ReminderID),
		EventID:    int64(d.EventID),
		EventTitle: d.EventTitle,
		OwnerID:    int64(d.OwnerID),
		ChatIDs:    chatIDs,
		SentAt:     d.SentAt,
	})
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("reminderID", d.ReminderID),
	)
	return nil
}
