package listusergroups

import (
	"context"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	"calremind/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Groups []group.Group
}

type service struct {
	log             logging.Logger
	groupRepository group.GroupRepository
}

func New(
	log logging.Logger,
	groupRepository group.GroupRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if groupRepository == nil {
		panic(e.NewNilArgumentError("groupRepository"))
	}
	return &service{log: log, groupRepository: groupRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	groups, err := s.groupRepository.ListByMember(ctx, input.UserID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	return Result{Groups: groups}, nil
}
