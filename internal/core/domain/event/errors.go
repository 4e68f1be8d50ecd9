package event

import "errors"

var (
	ErrEventDoesNotExist = errors.New("event does not exist")
	ErrEventTitleNotSet  = errors.New("event title is not set")
	ErrEventAtTimeIsNotUTC = errors.New("event time must be UTC")
)
