package createevent

import (
	"context"
	"time"

	c "calremind/internal/core/domain/common"
	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/reminder"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	"calremind/internal/core/services/auth"
)

type Input struct {
	User        user.User
	GroupID     c.Optional[group.ID]
	Title       string
	Description c.Optional[string]
	At          time.Time
	Recurrence  c.Optional[string]
	Offsets     reminder.Offsets
}

func (i Input) Validate() error {
	if i.Title == "" {
		return event.ErrEventTitleNotSet
	}
	if i.At.Location() != time.UTC {
		return event.ErrEventAtTimeIsNotUTC
	}
	return i.Offsets.Validate()
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Event     event.Event
	Reminders []reminder.Reminder
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	now        func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, unitOfWork: unitOfWork, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	if input.GroupID.IsPresent {
		// Shared events may only be created by members of the group.
		if _, err := uow.Memberships().Get(ctx, input.GroupID.Value, input.User.ID); err != nil {
			return result, err
		}
	}

	ev, err := uow.Events().Create(ctx, event.CreateInput{
		OwnerID:     input.User.ID,
		GroupID:     input.GroupID,
		Title:       input.Title,
		Description: input.Description,
		At:          input.At,
		Recurrence:  input.Recurrence,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	reminders, err := uow.Reminders().CreateMany(ctx, reminder.CreateManyInput{
		EventID: ev.ID,
		Times:   input.Offsets.Times(ev.At),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("eventID", ev.ID))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(
		ctx,
		"Event created.",
		logging.Entry("eventID", ev.ID),
		logging.Entry("userID", input.User.ID),
		logging.Entry("reminderCount", len(reminders)),
	)
	return Result{Event: ev, Reminders: reminders}, nil
}
