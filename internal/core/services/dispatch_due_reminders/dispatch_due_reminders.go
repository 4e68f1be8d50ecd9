package dispatchduereminders

import (
	"context"
	"errors"
	"time"

	"calremind/internal/core/domain/bot"
	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/reminder"
	uow "calremind/internal/core/domain/unit_of_work"
	"calremind/internal/core/services"
	resolverecipients "calremind/internal/core/services/resolve_recipients"
)

type Input struct{}

type Result struct {
	// SentCount is the number of reminders transitioned to sent in this pass.
	SentCount int
}

// service is one pass of the dispatch loop: scan due unsent reminders,
// resolve recipients, deliver through the bot channel and flip the sent
// flag of every reminder with at least one successful delivery. The pass
// is idempotent: reminders it could not deliver stay unsent and are
// picked up again on the next pass.
type service struct {
	log             logging.Logger
	unitOfWork      uow.UnitOfWork
	resolver        services.Service[resolverecipients.Input, resolverecipients.Result]
	sender          bot.MessageSender
	publisher       reminder.DeliveredPublisher
	deliveryTimeout time.Duration
	now             func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	resolver services.Service[resolverecipients.Input, resolverecipients.Result],
	sender bot.MessageSender,
	publisher reminder.DeliveredPublisher,
	deliveryTimeout time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if resolver == nil {
		panic(e.NewNilArgumentError("resolver"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if deliveryTimeout <= 0 {
		panic("deliveryTimeout must be positive")
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		unitOfWork:      unitOfWork,
		resolver:        resolver,
		sender:          sender,
		publisher:       publisher,
		deliveryTimeout: deliveryTimeout,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	defer uow.Rollback(ctx)

	now := s.now().UTC()
	due, err := uow.Reminders().DueUnsent(ctx, now)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	if len(due) > 0 {
		s.log.Info(ctx, "Got due reminders.", logging.Entry("count", len(due)), logging.Entry("asOf", now))
	}

	for _, rem := range due {
		sent, err := s.dispatch(ctx, uow, rem)
		if err != nil {
			return result, err
		}
		if sent {
			result.SentCount++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return Result{}, err
	}

	if result.SentCount > 0 {
		s.log.Info(ctx, "Reminders dispatched.", logging.Entry("sentCount", result.SentCount))
	}
	return result, nil
}

func (s *service) dispatch(ctx context.Context, uow uow.Context, rem reminder.Reminder) (bool, error) {
	ev, err := uow.Events().GetByID(ctx, rem.EventID)
	if errors.Is(err, event.ErrEventDoesNotExist) {
		// Event deleted between scan and processing; the reminder is
		// operationally dead and will disappear with the cascade.
		s.log.Debug(ctx, "Skip orphaned reminder.", logging.Entry("reminderID", rem.ID))
		return false, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return false, err
	}

	resolved, err := s.resolver.Run(ctx, resolverecipients.Input{Event: ev})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return false, err
	}
	if len(resolved.ChatIDs) == 0 {
		// No linked chat yet. Leave the reminder unsent so a later pass
		// delivers it once a link appears.
		s.log.Info(
			ctx,
			"Reminder has no reachable recipients, keeping it unsent.",
			logging.Entry("reminderID", rem.ID),
			logging.Entry("eventID", ev.ID),
		)
		return false, nil
	}

	text := ComposeMessage(ev)
	delivered := 0
	for _, chatID := range resolved.ChatIDs {
		if s.deliver(ctx, chatID, text) {
			delivered++
		} else {
			s.log.Warning(
				ctx,
				"Reminder delivery failed.",
				logging.Entry("reminderID", rem.ID),
				logging.Entry("chatID", chatID),
			)
		}
	}
	if delivered == 0 {
		return false, nil
	}

	flipped, err := uow.Reminders().MarkSent(ctx, rem.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return false, err
	}
	if !flipped {
		// Another pass claimed this reminder first.
		return false, nil
	}

	s.publish(ctx, rem, ev, resolved.ChatIDs)
	return true, nil
}

func (s *service) deliver(ctx context.Context, chatID bot.ChatID, text string) bool {
	deliveryCtx, cancel := context.WithTimeout(ctx, s.deliveryTimeout)
	defer cancel()
	err := s.sender.SendMessage(deliveryCtx, bot.Message{ChatID: chatID, Text: text})
	return err == nil
}

func (s *service) publish(ctx context.Context, rem reminder.Reminder, ev event.Event, chatIDs []bot.ChatID) {
	err := s.publisher.PublishDelivered(ctx, reminder.DeliveredEvent{
		ReminderID: rem.ID,
		EventID:    ev.ID,
		EventTitle: ev.Title,
		OwnerID:    ev.OwnerID,
		ChatIDs:    chatIDs,
		SentAt:     s.now().UTC(),
	})
	if err != nil {
		// Observability only, never fails the pass.
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
	}
}
