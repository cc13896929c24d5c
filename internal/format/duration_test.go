package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0 seconds"},
		{1, "1 second"},
		{59, "59 seconds"},
		{60, "1 minute"},
		{90, "1 minute"},
		{120, "2 minutes"},
		{3600, "1 hour"},
		{3661, "1 hour 1 minute"},
		{5400, "1 hour 30 minutes"},
		{7200, "2 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := FormatDuration(tt.seconds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDurationNegative(t *testing.T) {
	_, err := FormatDuration(-1)
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	start := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)

	seconds, ok := Duration(start, &end)
	require.True(t, ok)
	assert.Equal(t, 90, seconds)
}

func TestDurationUnknownWithoutEnd(t *testing.T) {
	start := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	_, ok := Duration(start, nil)
	assert.False(t, ok)

	end := start.Add(time.Minute)
	_, ok = Duration(time.Time{}, &end)
	assert.False(t, ok)
}
