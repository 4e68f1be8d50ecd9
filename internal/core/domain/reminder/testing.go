package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"calremind/internal/core/domain/event"
)

type FakeReminderRepository struct {
	Reminders   []Reminder
	ReturnError bool
	nextID      ID
	lock        sync.Mutex
}

func NewFakeReminderRepository() *FakeReminderRepository {
	return &FakeReminderRepository{}
}

func (r *FakeReminderRepository) CreateMany(ctx context.Context, input CreateManyInput) ([]Reminder, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not create reminders %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	created := make([]Reminder, 0, len(input.Times))
	for _, at := range input.Times {
		r.nextID++
		rem := Reminder{ID: r.nextID, EventID: input.EventID, At: at}
		r.Reminders = append(r.Reminders, rem)
		created = append(created, rem)
	}
	return created, nil
}

func (r *FakeReminderRepository) DueUnsent(ctx context.Context, asOf time.Time) ([]Reminder, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read due reminders")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	due := make([]Reminder, 0)
	for _, rem := range r.Reminders {
		if !rem.Sent && !rem.At.After(asOf) {
			due = append(due, rem)
		}
	}
	return due, nil
}

func (r *FakeReminderRepository) MarkSent(ctx context.Context, id ID) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, rem := range r.Reminders {
		if rem.ID != id {
			continue
		}
		if rem.Sent {
			return false, nil
		}
		r.Reminders[ix].Sent = true
		return true, nil
	}
	return false, ErrReminderDoesNotExist
}

func (r *FakeReminderRepository) ListByEvent(ctx context.Context, eventID event.ID) ([]Reminder, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	reminders := make([]Reminder, 0)
	for _, rem := range r.Reminders {
		if rem.EventID == eventID {
			reminders = append(reminders, rem)
		}
	}
	return reminders, nil
}

func (r *FakeReminderRepository) DeleteByEvent(ctx context.Context, eventID event.ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Reminders[:0]
	for _, rem := range r.Reminders {
		if rem.EventID != eventID {
			kept = append(kept, rem)
		}
	}
	r.Reminders = kept
	return nil
}

type FakeDeliveredPublisher struct {
	Published    []DeliveredEvent
	PublishError error
	lock         sync.Mutex
}

func NewFakeDeliveredPublisher() *FakeDeliveredPublisher {
	return &FakeDeliveredPublisher{}
}

func (p *FakeDeliveredPublisher) PublishDelivered(ctx context.Context, e DeliveredEvent) error {
	if p.PublishError != nil {
		return p.PublishError
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, e)
	return nil
}
