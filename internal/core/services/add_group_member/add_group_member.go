package addgroupmember

import (
	"context"
	"time"

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
	UserID  user.ID
	Role    group.Role
}

func (i Input) Validate() error {
	if !i.Role.IsValid() {
		return group.ErrInvalidRole
	}
	return nil
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Member group.Member
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

	actor, err := uow.Memberships().Get(ctx, input.GroupID, input.User.ID)
	if err != nil {
		return result, err
	}
	if !actor.Role.CanManageMembers() {
		return result, group.ErrPermissionDenied
	}

	if _, err := uow.Users().GetByID(ctx, input.UserID); err != nil {
		return result, err
	}

	member, err := uow.Memberships().Create(ctx, group.CreateMemberInput{
		GroupID:   input.GroupID,
		UserID:    input.UserID,
		Role:      input.Role,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(
		ctx,
		"Group member added.",
		logging.Entry("groupID", input.GroupID),
		logging.Entry("userID", input.UserID),
		logging.Entry("role", input.Role),
	)
	return Result{Member: member}, nil
}
