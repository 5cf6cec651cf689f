package claude

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDisplayOffset shifts the session clock times reported by the CLI into
// the display timezone (UTC to JST)
const DefaultDisplayOffset = 9 * time.Hour

const (
	clock12Layout    = "3:04:05 PM"
	clock12OutLayout = "03:04:05 PM"
	clock24Layout    = "15:04:05"
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+)h`)
	minutesPattern = regexp.MustCompile(`(\d+)m`)
)

func parseClock12(s string) (time.Time, error) {
	t, err := time.Parse(clock12Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t, nil
}

// toTwentyFourHour converts "1:00:00 PM" to "13:00:00"
func toTwentyFourHour(s string) (string, error) {
	t, err := parseClock12(s)
	if err != nil {
		return "", err
	}
	return t.Format(clock24Layout), nil
}

// fromTwentyFourHour converts "13:00:00" to "01:00:00 PM"
func fromTwentyFourHour(s string) (string, error) {
	t, err := time.Parse(clock24Layout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Format(clock12OutLayout), nil
}

// ShiftClock moves a 12-hour clock time by offset, wrapping around midnight.
// Minutes and seconds are preserved for whole-hour offsets.
func ShiftClock(s string, offset time.Duration) (string, error) {
	h24, err := toTwentyFourHour(s)
	if err != nil {
		return "", err
	}
	t, err := time.Parse(clock24Layout, h24)
	if err != nil {
		return "", fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return fromTwentyFourHour(t.Add(offset).Format(clock24Layout))
}

// remainingDuration reads "2h 30m", "2h" or "45m"; either part defaults to zero
func remainingDuration(s string) time.Duration {
	var d time.Duration
	if m := hoursPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		d += time.Duration(h) * time.Hour
	}
	if m := minutesPattern.FindStringSubmatch(s); m != nil {
		mins, _ := strconv.Atoi(m[1])
		d += time.Duration(mins) * time.Minute
	}
	return d
}

// AddRemaining returns the clock time reached remaining ("2h 30m") after start
func AddRemaining(start, remaining string) (string, error) {
	return ShiftClock(start, remainingDuration(remaining))
}
