package createevent

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	c "calremind/internal/core/domain/common"
	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/reminder"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	service "calremind/internal/core/services/create_event"
	"calremind/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	GroupID     *int64    `json:"group_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	At          time.Time `json:"at"`
	Recurrence  *string   `json:"recurrence"`
	Offsets     []int     `json:"reminder_offsets"`
}

type Result struct {
	Event     response.Event      `json:"event"`
	Reminders []response.Reminder `json:"reminders"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Description, validation.Length(0, 4096)),
		validation.Field(&i.At, validation.Required),
		validation.Field(&i.Recurrence, validation.Length(0, 256)),
		validation.Field(&i.Offsets, validation.Length(0, 32)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), serviceInput(input))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, group.ErrMemberDoesNotExist):
			response.RenderError(rw, "not a member of the group", http.StatusForbidden)
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	ev := response.Event{}
	ev.FromDomainEvent(result.Event)
	response.Render(rw, Result{
		Event:     ev,
		Reminders: response.RemindersFromDomain(result.Reminders),
	}, http.StatusCreated)
}

func serviceInput(input Input) service.Input {
	var groupID c.Optional[group.ID]
	if input.GroupID != nil {
		groupID = c.NewOptional(group.ID(*input.GroupID), true)
	}
	var description c.Optional[string]
	if input.Description != nil {
		description = c.NewOptional(*input.Description, true)
	}
	var recurrence c.Optional[string]
	if input.Recurrence != nil {
		recurrence = c.NewOptional(*input.Recurrence, true)
	}
	offsets := make(reminder.Offsets, len(input.Offsets))
	for ix, offset := range input.Offsets {
		offsets[ix] = reminder.Offset(offset)
	}
	return service.Input{
		GroupID:     groupID,
		Title:       input.Title,
		Description: description,
		At:          input.At.UTC(),
		Recurrence:  recurrence,
		Offsets:     offsets,
	}
}

func isExpectedError(err error) bool {
	return (errors.Is(err, event.ErrEventTitleNotSet) ||
		errors.Is(err, event.ErrEventAtTimeIsNotUTC) ||
		errors.Is(err, reminder.ErrNegativeOffset))
}
