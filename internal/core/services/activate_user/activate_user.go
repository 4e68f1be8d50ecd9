package activateuser

import (
	"context"
	"time"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
)

type Input struct {
	ActivationToken user.ActivationToken
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, userRepository: userRepository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.Activate(ctx, input.ActivationToken, s.now().UTC())
	if err != nil {
		return result, err
	}
	s.log.Info(ctx, "User has been activated.", logging.Entry("userID", u.ID))
	return result, nil
}
