package creategroup

import (
	"context"
	"time"

	c "calremind/internal/core/domain/common"
	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	"calremind/internal/core/services/auth"
)

type Input struct {
	User        user.User
	Name        string
	Description c.Optional[string]
}

func (i Input) Validate() error {
	if i.Name == "" {
		return group.ErrGroupNameNotSet
	}
	return nil
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Group group.Group
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

	now := s.now().UTC()
	g, err := uow.Groups().Create(ctx, group.CreateGroupInput{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.User.ID,
		CreatedAt:   now,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	// The creator is enrolled as owner in the same transaction so a
	// group can never exist without at least one managing member.
	_, err = uow.Memberships().Create(ctx, group.CreateMemberInput{
		GroupID:   g.ID,
		UserID:    input.User.ID,
		Role:      group.RoleOwner,
		CreatedAt: now,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("groupID", g.ID))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(
		ctx,
		"Group created.",
		logging.Entry("groupID", g.ID),
		logging.Entry("createdBy", input.User.ID),
	)
	return Result{Group: g}, nil
}
