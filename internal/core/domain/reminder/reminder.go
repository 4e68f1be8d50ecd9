package reminder

import (
	"time"

	"calremind/internal/core/domain/event"
)

type ID int64

// Reminder is a single materialized notification slot for an event.
// Sent is monotonic: once true it never goes back to false, and a sent
// reminder is never delivered again.
type Reminder struct {
	ID      ID
	EventID event.ID
	// At is the trigger instant (event time minus the offset), UTC.
	At   time.Time
	Sent bool
}

// Offset is a number of minutes before the event time at which a
// reminder fires. Zero means "at event time".
type Offset int

func (o Offset) Duration() time.Duration {
	return time.Duration(o) * time.Minute
}

type Offsets []Offset

func (o Offsets) Validate() error {
	for _, offset := range o {
		if offset < 0 {
			return ErrNegativeOffset
		}
	}
	return nil
}

// Times materializes reminder trigger instants for an event occurring
// at eventAt. The zero offset is always included, duplicates collapse.
func (o Offsets) Times(eventAt time.Time) []time.Time {
	seen := map[Offset]struct{}{0: {}}
	times := []time.Time{eventAt}
	for _, offset := range o {
		if _, ok := seen[offset]; ok {
			continue
		}
		seen[offset] = struct{}{}
		times = append(times, eventAt.Add(-offset.Duration()))
	}
	return times
}
