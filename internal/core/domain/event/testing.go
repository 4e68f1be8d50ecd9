package event

import (
	"context"
	"fmt"
	"sync"

	"calremind/internal/core/domain/user"
)

type FakeEventRepository struct {
	Events      []Event
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeEventRepository() *FakeEventRepository {
	return &FakeEventRepository{}
}

func (r *FakeEventRepository) Create(ctx context.Context, input CreateInput) (ev Event, err error) {
	if r.ReturnError {
		return ev, fmt.Errorf("could not create event %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Events {
		maxID = existing.ID
	}
	ev = Event{
		ID:          maxID + 1,
		OwnerID:     input.OwnerID,
		GroupID:     input.GroupID,
		Title:       input.Title,
		Description: input.Description,
		At:          input.At,
		Recurrence:  input.Recurrence,
		CreatedAt:   input.CreatedAt,
	}
	r.Events = append(r.Events, ev)
	return ev, nil
}

func (r *FakeEventRepository) GetByID(ctx context.Context, id ID) (ev Event, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, ev := range r.Events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return ev, ErrEventDoesNotExist
}

func (r *FakeEventRepository) Update(ctx context.Context, input UpdateInput) (ev Event, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Events {
		if existing.ID == input.ID {
			existing.GroupID = input.GroupID
			existing.Title = input.Title
			existing.Description = input.Description
			existing.At = input.At
			existing.Recurrence = input.Recurrence
			r.Events[ix] = existing
			return existing, nil
		}
	}
	return ev, ErrEventDoesNotExist
}

func (r *FakeEventRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, ev := range r.Events {
		if ev.ID == id {
			r.Events = append(r.Events[:ix], r.Events[ix+1:]...)
			return nil
		}
	}
	return ErrEventDoesNotExist
}

func (r *FakeEventRepository) ListByOwner(ctx context.Context, ownerID user.ID) ([]Event, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	events := make([]Event, 0)
	for _, ev := range r.Events {
		if ev.OwnerID == ownerID {
			events = append(events, ev)
		}
	}
	return events, nil
}
