package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomDate(t *testing.T) {
	got, err := ParseCustomDate("2024-06-01 12:30:45")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC), got)

	// Surrounding whitespace is tolerated.
	_, err = ParseCustomDate("  2024-06-01 12:30:45 ")
	assert.NoError(t, err)

	// Non-canonical but recognizable layouts are accepted.
	_, err = ParseCustomDate("2024-06-01T12:30:45Z")
	assert.NoError(t, err)
	_, err = ParseCustomDate("2024-06-01")
	assert.NoError(t, err)

	_, err = ParseCustomDate("not a date")
	assert.Error(t, err)
}

func TestNormalizeCustomDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-06-01 12:30:45", "2024-06-01 12:30:45"},
		{"2024-06-01T12:30:45Z", "2024-06-01 12:30:45"},
		{"2024-06-01", "2024-06-01 00:00:00"},
	}

	for _, tc := range tests {
		got, err := NormalizeCustomDate(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := NormalizeCustomDate("yesterday-ish")
	assert.Error(t, err)
}

func TestFormatTimestampRoundTrip(t *testing.T) {
	ts := time.Date(2023, 12, 24, 8, 15, 0, 0, time.UTC)
	parsed, err := ParseCustomDate(FormatTimestamp(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))
}
