package listgroupmembers

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
	User    user.User
	GroupID group.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Members []group.Member
}

type service struct {
	log                  logging.Logger
	membershipRepository group.MembershipRepository
}

func New(
	log logging.Logger,
	membershipRepository group.MembershipRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if membershipRepository == nil {
		panic(e.NewNilArgumentError("membershipRepository"))
	}
	return &service{log: log, membershipRepository: membershipRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if _, err := s.membershipRepository.Get(ctx, input.GroupID, input.User.ID); err != nil {
		return result, err
	}
	members, err := s.membershipRepository.ListByGroup(ctx, input.GroupID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("groupID", input.GroupID))
		return result, err
	}
	return Result{Members: members}, nil
}
