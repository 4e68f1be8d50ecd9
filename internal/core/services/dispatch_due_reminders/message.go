package dispatchduereminders

import (
	"strings"

	"calremind/internal/core/domain/event"

	"github.com/golang-module/carbon/v2"
)

// ComposeMessage renders the notification text for an event's reminder.
// The title is always present; shared events carry a group marker so a
// recipient can tell a group reminder from a personal one.
func ComposeMessage(ev event.Event) string {
	var b strings.Builder
	if ev.IsShared() {
		b.WriteString("👥 Group reminder: ")
	} else {
		b.WriteString("🔔 Reminder: ")
	}
	b.WriteString(ev.Title)
	if ev.Description.IsPresent {
		b.WriteString("\n")
		b.WriteString(ev.Description.Value)
	}
	b.WriteString("\nAt: ")
	b.WriteString(carbon.CreateFromStdTime(ev.At).ToDateTimeString())
	b.WriteString(" UTC")
	return b.String()
}
