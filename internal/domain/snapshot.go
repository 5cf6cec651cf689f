package domain

import "time"

// CycleResult is the outcome of one completed poll cycle
type CycleResult struct {
	At     time.Time
	Err    error
	ID     string
	Record *UsageRecord // nil when the command failed or the output did not parse
	View   StatusView
}

// StatusSnapshot is the last rendered status as persisted for other processes
// (tmux status line, SSH viewers)
type StatusSnapshot struct {
	Color     string    `json:"color"`
	Text      string    `json:"text"`
	Tooltip   string    `json:"tooltip"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStatusSnapshot captures view at the given time
func NewStatusSnapshot(view StatusView, at time.Time) StatusSnapshot {
	return StatusSnapshot{
		Color:     view.Color.String(),
		Text:      view.Text,
		Tooltip:   view.Tooltip,
		UpdatedAt: at,
	}
}

// IsStale reports whether the snapshot is older than maxAge
func (s StatusSnapshot) IsStale(now time.Time, maxAge time.Duration) bool {
	return now.Sub(s.UpdatedAt) > maxAge
}

// UsageSnapshot is a parsed record stored in the optional history
type UsageSnapshot struct {
	BurnRatePerMinute *float64  `json:"burn_rate_per_minute,omitempty"`
	CapturedAt        time.Time `json:"captured_at"`
	Cost              *float64  `json:"cost,omitempty"`
	ID                uint      `json:"id"`
	ModelName         string    `json:"model_name"`
	Plan              Plan      `json:"plan"`
	SessionProgress   *float64  `json:"session_progress,omitempty"`
	TokenCount        int64     `json:"token_count"`
}

// NewUsageSnapshot flattens a record for storage
func NewUsageSnapshot(rec *UsageRecord, at time.Time) UsageSnapshot {
	return UsageSnapshot{
		BurnRatePerMinute: rec.BurnRatePerMinute,
		CapturedAt:        at,
		Cost:              rec.Cost,
		ModelName:         rec.ModelName,
		Plan:              rec.Plan,
		SessionProgress:   rec.SessionProgress,
		TokenCount:        rec.TokenCount,
	}
}
