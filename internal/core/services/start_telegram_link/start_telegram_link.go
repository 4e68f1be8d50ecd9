package starttelegramlink

import (
	"context"
	"time"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	"calremind/internal/core/services/auth"
)

type Input struct {
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Link user.TelegramLink
}

type service struct {
	log                    logging.Logger
	telegramLinkRepository user.TelegramLinkRepository
	linkCodeGenerator      user.LinkCodeGenerator
	now                    func() time.Time
}

func New(
	log logging.Logger,
	telegramLinkRepository user.TelegramLinkRepository,
	linkCodeGenerator user.LinkCodeGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if telegramLinkRepository == nil {
		panic(e.NewNilArgumentError("telegramLinkRepository"))
	}
	if linkCodeGenerator == nil {
		panic(e.NewNilArgumentError("linkCodeGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                    log,
		telegramLinkRepository: telegramLinkRepository,
		linkCodeGenerator:      linkCodeGenerator,
		now:                    now,
	}
}

// Run issues a fresh pairing code the user sends to the bot as
// "/link <code>". Codes stay unconfirmed until the bot sees them.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	link, err := s.telegramLinkRepository.Create(ctx, user.CreateTelegramLinkInput{
		UserID:    input.User.ID,
		Code:      s.linkCodeGenerator.GenerateLinkCode(),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}
	s.log.Info(
		ctx,
		"Telegram link started.",
		logging.Entry("userID", input.User.ID),
		logging.Entry("linkID", link.ID),
	)
	return Result{Link: link}, nil
}
