package me

import (
	"errors"
	"net/http"

	e "calremind/internal/core/domain/errors"
	"calremind/internal/core/domain/user"
	"calremind/internal/core/services"
	domainAuth "calremind/internal/core/services/auth"
	service "calremind/internal/core/services/get_user_by_session_token"
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
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := r.Context().Value(domainAuth.CONTEXT_AUTH_TOKEN_KEY).(user.SessionToken)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	result, err := h.service.Run(r.Context(), service.Input{Token: token})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}
