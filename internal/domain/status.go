package domain

// ColorHint is the three-tier background classification of the status element
type ColorHint int

const (
	ColorNeutral ColorHint = iota
	ColorWarning
	ColorError
)

// String returns the hint name used in logs and JSON output
func (c ColorHint) String() string {
	switch c {
	case ColorWarning:
		return "warning"
	case ColorError:
		return "error"
	default:
		return "neutral"
	}
}

// Max returns the stronger of two hints
func (c ColorHint) Max(other ColorHint) ColorHint {
	if other > c {
		return other
	}
	return c
}

// StatusView is what the UI element displays after a poll cycle
type StatusView struct {
	Color   ColorHint
	Text    string
	Tooltip string
}

// DetailItem is one entry of the details list (label plus description)
type DetailItem struct {
	Action      string
	Description string
	Label       string
}

// PollerState is the lifecycle state of the usage poller
type PollerState string

const (
	PollerDisposed PollerState = "disposed"
	PollerIdle     PollerState = "idle"
	PollerPolling  PollerState = "polling"
)
