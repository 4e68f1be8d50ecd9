package addgroupmember

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	service "calremind/internal/core/services/add_group_member"
	"calremind/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

type Result struct {
	Member response.Member `json:"member"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.UserID, validation.Required),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid group ID", http.StatusBadRequest)
		return
	}
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	role := group.Role(input.Role)
	if input.Role == "" {
		role = group.RoleMember
	}

	result, err := h.service.Run(r.Context(), service.Input{
		GroupID: group.ID(groupID),
		UserID:  user.ID(input.UserID),
		Role:    role,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, "user does not exist", http.StatusUnprocessableEntity)
		case errors.Is(err, group.ErrMemberDoesNotExist):
			response.RenderError(rw, "group does not exist", http.StatusNotFound)
		case errors.Is(err, group.ErrPermissionDenied):
			response.RenderError(rw, "role does not permit adding members", http.StatusForbidden)
		case errors.Is(err, group.ErrMemberAlreadyExists):
			response.RenderError(rw, "user is already a member", http.StatusUnprocessableEntity)
		case errors.Is(err, group.ErrInvalidRole):
			response.RenderError(rw, "invalid role", http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	m := response.Member{}
	m.FromDomainMember(result.Member)
	response.Render(rw, Result{Member: m}, http.StatusCreated)
}
