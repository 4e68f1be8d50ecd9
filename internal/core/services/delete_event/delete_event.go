package deleteevent

import (
	"context"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/logging"
	uow "calremind/internal/core/domain/unit_of_work"
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

type Result struct{}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	return &service{log: log, unitOfWork: unitOfWork}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	ev, err := uow.Events().GetByID(ctx, input.EventID)
	if err != nil {
		return result, err
	}
	if ev.OwnerID != input.User.ID {
		return result, event.ErrEventDoesNotExist
	}

	if err := uow.Reminders().DeleteByEvent(ctx, ev.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("eventID", ev.ID))
		return result, err
	}
	if err := uow.Events().Delete(ctx, ev.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("eventID", ev.ID))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(ctx, "Event deleted.", logging.Entry("eventID", ev.ID))
	return result, nil
}
