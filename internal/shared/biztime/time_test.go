package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// All expectations assume the default business timezone (America/Lima,
// UTC-5 year round).

func TestStartOfDayUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "afternoon in lima",
			in:   time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 13, 5, 0, 0, 0, time.UTC),
		},
		{
			name: "utc date ahead of lima date",
			in:   time.Date(2024, 3, 13, 2, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 12, 5, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfDayUTC(tt.in))
		})
	}
}

func TestStartOfWeekUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday maps to same week's monday",
			in:   time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 11, 5, 0, 0, 0, time.UTC),
		},
		{
			name: "monday maps to itself",
			in:   time.Date(2024, 3, 11, 18, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 11, 5, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday counts as day seven of the prior week",
			in:   time.Date(2024, 1, 7, 18, 0, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeekUTC(tt.in))
		})
	}
}

func TestStartOfMonthUTC(t *testing.T) {
	got := StartOfMonthUTC(time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC), got)
}

func TestStartOfDateUTC(t *testing.T) {
	got, err := StartOfDateUTC("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = StartOfDateUTC("10/03/2024")
	assert.Error(t, err)
}

func TestEndOfDateUTC(t *testing.T) {
	got, err := EndOfDateUTC("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999000000, time.UTC), got)

	_, err = EndOfDateUTC("")
	assert.Error(t, err)
}
