package deleteevent

import (
	"errors"
	"net/http"
	"strconv"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	service "calremind/internal/core/services/delete_event"
	"calremind/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid event ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{EventID: event.ID(eventID)})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, event.ErrEventDoesNotExist):
			response.RenderError(rw, "event does not exist", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
