package dispatchduereminders

import (
	"testing"
	"time"

	c "calremind/internal/core/domain/common"
	"calremind/internal/core/domain/event"
	"calremind/internal/core/domain/group"

	"github.com/stretchr/testify/require"
)

func TestComposeMessagePersonal(t *testing.T) {
	assert := require.New(t)
	ev := event.Event{
		Title: "dentist",
		At:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	text := ComposeMessage(ev)

	assert.Contains(text, "dentist")
	assert.Contains(text, "🔔")
	assert.NotContains(text, "👥")
	assert.Contains(text, "2025-06-01 12:00:00")
}

func TestComposeMessageShared(t *testing.T) {
	assert := require.New(t)
	ev := event.Event{
		Title:       "standup",
		Description: c.NewOptional("daily sync in the big room", true),
		GroupID:     c.NewOptional(group.ID(7), true),
		At:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	text := ComposeMessage(ev)

	assert.Contains(text, "standup")
	assert.Contains(text, "daily sync in the big room")
	assert.Contains(text, "👥")
}
