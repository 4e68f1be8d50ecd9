package event

import (
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/group"
	"calremind/internal/core/domain/user"
)

type ID int64

// Event is a calendar entry. A present GroupID makes the event shared:
// its reminders go to every member of the group. An absent GroupID makes
// it personal: reminders go to the owner only.
type Event struct {
	ID          ID
	OwnerID     user.ID
	GroupID     c.Optional[group.ID]
	Title       string
	Description c.Optional[string]
	// At is the trigger instant of the event itself, always UTC.
	At time.Time
	// Recurrence is an opaque descriptor (e.g. an RRULE); it is stored
	// and returned but never expanded by this service.
	Recurrence c.Optional[string]
	CreatedAt  time.Time
}

func (e *Event) IsShared() bool {
	return e.GroupID.IsPresent
}
