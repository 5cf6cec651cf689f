package claude

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTwentyFourHour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12:00:00 AM", "00:00:00"},
		{"1:00:00 AM", "01:00:00"},
		{"11:59:59 AM", "11:59:59"},
		{"12:30:15 PM", "12:30:15"},
		{"1:05:09 PM", "13:05:09"},
		{"09:00:00 PM", "21:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := toTwentyFourHour(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShiftClock_DefaultOffset(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1:00:00 AM", "10:00:00 AM"},
		{"3:00:00 AM", "12:00:00 PM"},
		{"4:20:10 AM", "01:20:10 PM"},
		{"3:00:00 PM", "12:00:00 AM"},
		{"11:45:00 PM", "08:45:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ShiftClock(tt.in, DefaultDisplayOffset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShiftClock_RoundTripKeepsMinutesAndSeconds(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for _, ms := range []string{"00:00", "07:42", "59:59"} {
			in24 := fmt.Sprintf("%02d:%s", hour, ms)
			in12, err := fromTwentyFourHour(in24)
			require.NoError(t, err)

			shifted, err := ShiftClock(in12, DefaultDisplayOffset)
			require.NoError(t, err)

			out24, err := toTwentyFourHour(shifted)
			require.NoError(t, err)

			wantHour := (hour + 9) % 24
			assert.Equal(t, fmt.Sprintf("%02d:%s", wantHour, ms), out24, "input %s", in24)
			assert.True(t, strings.HasSuffix(out24, ms))
		}
	}
}

func TestShiftClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "25:00:00 AM", "1:00 AM", "noon"} {
		_, err := ShiftClock(in, time.Hour)
		assert.Error(t, err, in)
	}
}

func TestAddRemaining(t *testing.T) {
	tests := []struct {
		start     string
		remaining string
		want      string
	}{
		{"10:00:00 AM", "2h 30m", "12:30:00 PM"},
		{"10:00:00 AM", "2h", "12:00:00 PM"},
		{"10:00:00 AM", "45m", "10:45:00 AM"},
		{"11:00:00 PM", "2h 5m", "01:05:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.start+"+"+tt.remaining, func(t *testing.T) {
			got, err := AddRemaining(tt.start, tt.remaining)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemainingDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour+30*time.Minute, remainingDuration("2h 30m"))
	assert.Equal(t, 3*time.Hour, remainingDuration("3h"))
	assert.Equal(t, 45*time.Minute, remainingDuration("45m"))
	assert.Equal(t, time.Duration(0), remainingDuration("soon"))
}

func TestParseSuffixed(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.5k", 1500, true},
		{"1.5K", 1500, true},
		{"2m", 2e6, true},
		{"0.25B", 2.5e8, true},
		{"1,200", 1200, true},
		{"12", 12, true},
		{"", 0, false},
		{"k", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseSuffixed(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}
