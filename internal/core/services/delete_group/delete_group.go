package deletegroup

import (
	"context"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	"calremind/internal/core/services/auth"
)

type Input struct {
	User    user.User
	GroupID group.ID
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

// Only the owner role may delete a group. Shared events attached to the
// group and all memberships go with it.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	if _, err := uow.Groups().GetByID(ctx, input.GroupID); err != nil {
		return result, err
	}
	member, err := uow.Memberships().Get(ctx, input.GroupID, input.User.ID)
	if err != nil {
		return result, err
	}
	if member.Role != group.RoleOwner {
		return result, group.ErrPermissionDenied
	}

	if err := uow.Groups().Delete(ctx, input.GroupID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("groupID", input.GroupID))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(ctx, "Group deleted.", logging.Entry("groupID", input.GroupID))
	return result, nil
}
