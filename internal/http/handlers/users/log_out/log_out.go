package logout

import (
	"net/http"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/services"
	service "calremind/internal/core/services/log_out"
	"calremind/internal/http/handlers/auth"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	// Logging out with an unknown token is not an error the client can
	// act on, the session is gone either way.
	h.service.Run(r.Context(), service.Input{Token: token})
	response.Render(rw, struct{}{}, http.StatusOK)
}
