package getevent

import (
	"context"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	"calremind/internal/core/services/auth"
)

type Input struct {
	User    user.User
	EventID event.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Event event.Event
}

type service struct {
	log                  logging.Logger
	eventRepository      event.EventRepository
	membershipRepository group.MembershipRepository
}

func New(
	log logging.Logger,
	eventRepository event.EventRepository,
	membershipRepository group.MembershipRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	if membershipRepository == nil {
		panic(e.NewNilArgumentError("membershipRepository"))
	}
	return &service{
		log:                  log,
		eventRepository:      eventRepository,
		membershipRepository: membershipRepository,
	}
}

// Owners always see their events. Shared events are also visible to
// every member of the attached group.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	ev, err := s.eventRepository.GetByID(ctx, input.EventID)
	if err != nil {
		return result, err
	}
	if ev.OwnerID == input.User.ID {
		return Result{Event: ev}, nil
	}
	if !ev.IsShared() {
		return result, event.ErrEventDoesNotExist
	}
	if _, err := s.membershipRepository.Get(ctx, ev.GroupID.Value, input.User.ID); err != nil {
		return result, event.ErrEventDoesNotExist
	}
	return Result{Event: ev}, nil
}
