package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOffsetsValidate(t *testing.T) {
	assert := require.New(t)

	assert.Nil(Offsets{}.Validate())
	assert.Nil(Offsets{0, 15, 30, 1440}.Validate())
	assert.ErrorIs(Offsets{30, -1}.Validate(), ErrNegativeOffset)
}

func TestOffsetsTimesAlwaysIncludeEventTime(t *testing.T) {
	assert := require.New(t)
	eventAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	times := Offsets{30}.Times(eventAt)

	assert.Len(times, 2)
	assert.Equal(eventAt, times[0])
	assert.Equal(time.Date(2025, 6, 1, 11, 30, 0, 0, time.UTC), times[1])
}

func TestOffsetsTimesCollapseDuplicates(t *testing.T) {
	assert := require.New(t)
	eventAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	times := Offsets{0, 30, 30}.Times(eventAt)

	assert.Len(times, 2)
}

func TestOffsetsTimesEmpty(t *testing.T) {
	assert := require.New(t)
	eventAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	times := Offsets(nil).Times(eventAt)

	assert.Equal([]time.Time{eventAt}, times)
}
