package listeventreminders

import (
	"context"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/reminder"
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
	Reminders []reminder.Reminder
}

type service struct {
	log                logging.Logger
	eventRepository    event.EventRepository
	reminderRepository reminder.ReminderRepository
}

func New(
	log logging.Logger,
	eventRepository event.EventRepository,
	reminderRepository reminder.ReminderRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                log,
		eventRepository:    eventRepository,
		reminderRepository: reminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	ev, err := s.eventRepository.GetByID(ctx, input.EventID)
	if err != nil {
		return result, err
	}
	if ev.OwnerID != input.User.ID {
		return result, event.ErrEventDoesNotExist
	}
	reminders, err := s.reminderRepository.ListByEvent(ctx, ev.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("eventID", ev.ID))
		return result, err
	}
	return Result{Reminders: reminders}, nil
}
