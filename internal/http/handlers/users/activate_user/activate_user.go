package activateuser

import (
	"errors"
	"net/http"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	service "calremind/internal/core/services/activate_user"
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
	token := chi.URLParam(r, "activationToken")
	if token == "" {
		response.RenderError(rw, "invalid activation token", http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(r.Context(), service.Input{
		ActivationToken: user.ActivationToken(token),
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidActivationToken):
			response.RenderError(rw, "invalid activation token", http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
