package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNaiveAsUTCKeepsWallClockReading(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2025, 6, 1, 12, 30, 0, 0, zone)

	out := NaiveAsUTC(in)

	assert := require.New(t)
	assert.Equal(time.UTC, out.Location())
	assert.Equal(12, out.Hour())
	assert.Equal(30, out.Minute())
	assert.Equal(time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC), out)
}

func TestNaiveAsUTCIsIdentityForUTC(t *testing.T) {
	in := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	require.Equal(t, in, NaiveAsUTC(in))
}
