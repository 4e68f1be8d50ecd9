package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"calremind/internal/core/domain/bot"
	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/logging"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	linkConfirmationService "calremind/internal/core/services/confirm_telegram_link"
	"calremind/internal/http/handlers/response"
)

const LINK_COMMAND = "/link"

type Handler struct {
	log              logging.Logger
	botMessageSender bot.MessageSender
	linkConfirmation services.Service[linkConfirmationService.Input, linkConfirmationService.Result]
}

func New(
	log logging.Logger,
	botMessageSender bot.MessageSender,
	linkConfirmation services.Service[linkConfirmationService.Input, linkConfirmationService.Result],
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if botMessageSender == nil {
		panic(e.NewNilArgumentError("botMessageSender"))
	}
	if linkConfirmation == nil {
		panic(e.NewNilArgumentError("linkConfirmation"))
	}
	return &Handler{
		log:              log,
		botMessageSender: botMessageSender,
		linkConfirmation: linkConfirmation,
	}
}

type chat struct {
	ID int64 `json:"id"`
}

type message struct {
	ID   int64  `json:"message_id"`
	Chat chat   `json:"chat"`
	Date int64  `json:"date"`
	Text string `json:"text"`
}

type update struct {
	ID      int64    `json:"update_id"`
	Message *message `json:"message"`
}

func (u *update) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(u)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	// Telegram retries non-200 responses, so the webhook always acks.
	defer response.Render(rw, struct{}{}, http.StatusOK)

	update := update{}
	if err := update.FromJSON(r.Body); err != nil {
		h.log.Error(
			r.Context(),
			"Could not decode Telegram update.",
			logging.Entry("err", err),
		)
		return
	}
	if update.Message == nil {
		h.log.Info(
			r.Context(),
			"Skip Telegram update.",
			logging.Entry("update", update),
		)
		return
	}
	h.log.Info(
		r.Context(),
		"Got Telegram update.",
		logging.Entry("updateID", update.ID),
		logging.Entry("updateMessage", update.Message),
	)

	code, ok := parseLinkCode(update)
	if !ok {
		h.sendBotMessage(
			r.Context(),
			update.Message.Chat.ID,
			"Send /link <code> to connect this chat to your account.",
		)
		return
	}
	_, err := h.linkConfirmation.Run(
		r.Context(),
		linkConfirmationService.Input{
			Code:   code,
			ChatID: bot.ChatID(update.Message.Chat.ID),
		},
	)
	if err != nil {
		h.sendBotMessage(
			r.Context(),
			update.Message.Chat.ID,
			"Sorry 😔, the link code is not valid. Please request a new one and try again.",
		)
		return
	}

	h.sendBotMessage(
		r.Context(),
		update.Message.Chat.ID,
		"Thank you, your account is now linked. Reminders will arrive in this chat.",
	)
}

func (h *Handler) sendBotMessage(ctx context.Context, chatID int64, text string) {
	err := h.botMessageSender.SendMessage(ctx, bot.Message{
		ChatID: bot.ChatID(chatID),
		Text:   text,
	})
	if err != nil {
		h.log.Error(
			ctx,
			"Could not send Telegram bot message due to unexpected error.",
			logging.Entry("chatID", chatID),
			logging.Entry("text", text),
			logging.Entry("err", err),
		)
		return
	}
	h.log.Info(
		ctx,
		"Telegram message successfully sent.",
		logging.Entry("chatID", chatID),
	)
}

func parseLinkCode(u update) (code user.LinkCode, ok bool) {
	parts := strings.Fields(u.Message.Text)
	if len(parts) != 2 {
		return code, false
	}
	if parts[0] != LINK_COMMAND {
		return code, false
	}
	return user.LinkCode(parts[1]), true
}
