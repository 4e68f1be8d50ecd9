package confirmtelegramlink

import (
	"context"

	"calremind/internal/core/domain/bot"
	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/logging"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
)

// Input comes from the bot side, not from an authenticated HTTP call:
// the chat ID is whatever chat the pairing code arrived from.
type Input struct {
	Code   user.LinkCode
	ChatID bot.ChatID
}

type Result struct {
	UserID user.ID
}

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
		logging.Error(ctx, s.log, err)
		return result, err
	}
	defer uow.Rollback(ctx)

	link, err := uow.TelegramLinks().GetByCode(ctx, input.Code)
	if err != nil {
		return result, err
	}
	if link.Confirmed {
		return result, user.ErrLinkCodeDoesNotExist
	}

	if err := uow.TelegramLinks().Confirm(ctx, link.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("linkID", link.ID))
		return result, err
	}
	if err := uow.Users().SetTelegramChatID(ctx, link.UserID, input.ChatID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", link.UserID))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(
		ctx,
		"Telegram link confirmed.",
		logging.Entry("userID", link.UserID),
		logging.Entry("chatID", input.ChatID),
	)
	return Result{UserID: link.UserID}, nil
}
