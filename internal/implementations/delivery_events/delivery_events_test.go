package deliveryevents

import (
	"context"
	"errors"
	"testing"

	"calremind/internal/core/domain/reminder"

	"github.com/stretchr/testify/require"
)

func TestFanoutForwardsToAllPublishers(t *testing.T) {
	first := reminder.NewFakeDeliveredPublisher()
	second := reminder.NewFakeDeliveredPublisher()
	fanout := NewFanout(first, second)

	err := fanout.PublishDelivered(context.Background(), reminder.DeliveredEvent{ReminderID: 1})

	assert := require.New(t)
	assert.Nil(err)
	assert.Len(first.Published, 1)
	assert.Len(second.Published, 1)
}

func TestFanoutKeepsGoingAfterError(t *testing.T) {
	first := reminder.NewFakeDeliveredPublisher()
	first.PublishError = errors.New("broker down")
	second := reminder.NewFakeDeliveredPublisher()
	fanout := NewFanout(first, second)

	err := fanout.PublishDelivered(context.Background(), reminder.DeliveredEvent{ReminderID: 1})

	assert := require.New(t)
	assert.ErrorIs(err, first.PublishError)
	assert.Len(second.Published, 1)
}
