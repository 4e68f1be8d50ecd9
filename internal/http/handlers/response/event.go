package response

import (
	"time"

	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/reminder"
)

type Event struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	GroupID     *int64    `json:"group_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	At          time.Time `json:"at"`
	Recurrence  *string   `json:"recurrence"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Event) FromDomainEvent(de event.Event) {
	e.ID = int64(de.ID)
	e.OwnerID = int64(de.OwnerID)
	if de.GroupID.IsPresent {
		groupID := int64(de.GroupID.Value)
		e.GroupID = &groupID
	}
	e.Title = de.Title
	if de.Description.IsPresent {
		e.Description = &de.Description.Value
	}
	e.At = de.At
	if de.Recurrence.IsPresent {
		e.Recurrence = &de.Recurrence.Value
	}
	e.CreatedAt = de.CreatedAt
}

type Reminder struct {
	ID      int64     `json:"id"`
	EventID int64     `json:"event_id"`
	At      time.Time `json:"at"`
	Sent    bool      `json:"sent"`
}

func (r *Reminder) FromDomainReminder(dr reminder.Reminder) {
	r.ID = int64(dr.ID)
	r.EventID = int64(dr.EventID)
	r.At = dr.At
	r.Sent = dr.Sent
}

func RemindersFromDomain(reminders []reminder.Reminder) []Reminder {
	result := make([]Reminder, len(reminders))
	for ix, dr := range reminders {
		result[ix].FromDomainReminder(dr)
	}
	return result
}
