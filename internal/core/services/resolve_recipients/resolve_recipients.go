package resolverecipients

import (
	"context"
	"errors"

	"calremind/internal/core/domain/bot"
	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
)

type Input struct {
	Event event.Event
}

type Result struct {
	ChatIDs []bot.ChatID
}

// service computes the delivery targets of an event's reminder.
// A personal event targets its owner's linked chat; a shared event
// targets the linked chat of every group member regardless of role.
// Principals without a linked chat are skipped silently: an empty
// result means "nothing to deliver", never an error.
type service struct {
	log                  logging.Logger
	userRepository       user.UserRepository
	membershipRepository group.MembershipRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	membershipRepository group.MembershipRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if membershipRepository == nil {
		panic(e.NewNilArgumentError("membershipRepository"))
	}
	return &service{
		log:                  log,
		userRepository:       userRepository,
		membershipRepository: membershipRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !input.Event.GroupID.IsPresent {
		return s.resolveOwner(ctx, input.Event)
	}
	return s.resolveGroupMembers(ctx, input.Event)
}

func (s *service) resolveOwner(ctx context.Context, ev event.Event) (result Result, err error) {
	owner, err := s.userRepository.GetByID(ctx, ev.OwnerID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("eventID", ev.ID))
		return result, err
	}
	if !owner.TelegramChatID.IsPresent {
		return result, nil
	}
	result.ChatIDs = []bot.ChatID{owner.TelegramChatID.Value}
	return result, nil
}

func (s *service) resolveGroupMembers(ctx context.Context, ev event.Event) (result Result, err error) {
	members, err := s.membershipRepository.ListByGroup(ctx, ev.GroupID.Value)
	if err != nil {
		logging.Error(
			ctx,
			s.log,
			err,
			logging.Entry("eventID", ev.ID),
			logging.Entry("groupID", ev.GroupID.Value),
		)
		return result, err
	}

	chatIDs := make([]bot.ChatID, 0, len(members))
	for _, member := range members {
		u, err := s.userRepository.GetByID(ctx, member.UserID)
		if errors.Is(err, user.ErrUserDoesNotExist) {
			continue
		}
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("userID", member.UserID))
			return result, err
		}
		if !u.TelegramChatID.IsPresent {
			continue
		}
		chatIDs = append(chatIDs, u.TelegramChatID.Value)
	}
	result.ChatIDs = chatIDs
	return result, nil
}
