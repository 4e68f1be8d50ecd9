package deletegroup

import (
	"errors"
	"net/http"
	"strconv"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	service "calremind/internal/core/services/delete_group"
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
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid group ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{GroupID: group.ID(groupID)})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, group.ErrGroupDoesNotExist), errors.Is(err, group.ErrMemberDoesNotExist):
			response.RenderError(rw, "group does not exist", http.StatusNotFound)
		case errors.Is(err, group.ErrPermissionDenied):
			response.RenderError(rw, "only the owner can delete a group", http.StatusForbidden)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
