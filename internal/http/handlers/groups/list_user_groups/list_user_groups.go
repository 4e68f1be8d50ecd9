package listusergroups

import (
	"errors"
	"net/http"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	service "calremind/internal/core/services/list_user_groups"
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
	Groups []response.Group `json:"groups"`
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

	groups := make([]response.Group, len(result.Groups))
	for ix, g := range result.Groups {
		groups[ix].FromDomainGroup(g)
	}
	response.Render(rw, Result{Groups: groups}, http.StatusOK)
}
