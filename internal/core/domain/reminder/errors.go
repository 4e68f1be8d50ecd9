package reminder

import "errors"

var (
	ErrReminderDoesNotExist = errors.New("reminder does not exist")
	ErrNegativeOffset       = errors.New("reminder offset must not be negative")
)
