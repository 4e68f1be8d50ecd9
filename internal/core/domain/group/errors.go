package group

import "errors"

var (
	ErrGroupDoesNotExist   = errors.New("group does not exist")
	ErrMemberDoesNotExist  = errors.New("user is not a member of the group")
	ErrMemberAlreadyExists = errors.New("user is already a member of the group")
	ErrGroupNameNotSet     = errors.New("group name must be set")
	ErrInvalidRole         = errors.New("invalid group member role")
	ErrPermissionDenied    = errors.New("group role does not permit the operation")
)
