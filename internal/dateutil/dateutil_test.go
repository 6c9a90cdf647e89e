package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2025-03-14", DateOnly("2025-03-14"))
	assert.Equal(t, "2025-03-14", DateOnly("2025-03-14T15:30"))
	assert.Equal(t, "2025-03-14", DateOnly("2025-03-14 15:30:00"))
	assert.Equal(t, "2025-03-14", DateOnly("  2025-03-14  "))
	assert.Equal(t, "", DateOnly(""))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2025-01-31", true},
		{"2025-01-31T09:00", true},
		{"2025-02-30", false},
		{"not-a-date", false},
		{"", false},
		{"2025-1-5", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, DateOnly(tt.input), got.Format(ISODate))
			}
		})
	}
}

func TestMonthBucket(t *testing.T) {
	assert.Equal(t, "2025-03", MonthBucket("2025-03-14"))
	assert.Equal(t, "2025-03", MonthBucket("2025-03-14T10:00"))
	assert.Equal(t, "2025", MonthBucket("2025"))
}

func TestAddDays(t *testing.T) {
	got, ok := AddDays("2025-01-31", 30)
	require.True(t, ok)
	assert.Equal(t, "2025-03-02", got)

	got, ok = AddDays("2024-12-31", 1)
	require.True(t, ok)
	assert.Equal(t, "2025-01-01", got)

	got, ok = AddDays("2025-03-10", -10)
	require.True(t, ok)
	assert.Equal(t, "2025-02-28", got)

	_, ok = AddDays("bogus", 7)
	assert.False(t, ok)
}

func TestMidnightAndToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 58, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), Midnight(now))

	clock := FixedClock{T: now}
	assert.Equal(t, "2025-06-15", Today(clock))
}
