package listuserevents

import (
	"errors"
	"net/http"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	service "calremind/internal/core/services/list_user_events"
	"calremind/internal/http/handlers/response"
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

type Result struct {
	Events []response.Event `json:"events"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	events := make([]response.Event, len(result.Events))
	for ix, ev := range result.Events {
		events[ix].FromDomainEvent(ev)
	}
	response.Render(rw, Result{Events: events}, http.StatusOK)
}
