package domain

// Plan classifies the billing/subscription situation detected in the CLI output
type Plan string

const (
	PlanAccessError     Plan = "Access error"
	PlanAvailable       Plan = "Available"
	PlanError           Plan = "Error"
	PlanInfoUnavailable Plan = "Info unavailable"
	PlanMax             Plan = "Max"
	PlanNotInstalled    Plan = "Not installed"
	PlanPro             Plan = "Pro"
	PlanTokenBased      Plan = "Token-based"
	PlanUsageBased      Plan = "Usage-based"
)

// UnknownModel is used when no model label could be extracted
const UnknownModel = "unknown"

// UsageRatio is the "$current / $limit" pair reported by usage-based billing
type UsageRatio struct {
	Current    float64 `json:"current"`
	Limit      float64 `json:"limit"`
	Percentage float64 `json:"percentage"`
}

// Remaining returns the budget left before the limit is reached
func (u UsageRatio) Remaining() float64 {
	if u.Current >= u.Limit {
		return 0
	}
	return u.Limit - u.Current
}

// UsageRecord is the structured result of parsing one poll's output.
// It is recomputed on every poll and never mutated after parsing.
// Optional fields are nil or empty when absent.
type UsageRecord struct {
	BurnRatePerMinute *float64    `json:"burn_rate_per_minute,omitempty"`
	Cost              *float64    `json:"cost,omitempty"`
	Hint              string      `json:"hint,omitempty"`
	IsActiveSession   bool        `json:"is_active_session"`
	ModelName         string      `json:"model_name"`
	Plan              Plan        `json:"plan"`
	PlanInferred      bool        `json:"plan_inferred,omitempty"` // true when Plan came from the session heuristic rather than an explicit marker
	ProjectedCost     *float64    `json:"projected_cost,omitempty"`
	ProjectedTokens   *int64      `json:"projected_tokens,omitempty"`
	SessionEnd        string      `json:"session_end,omitempty"`
	SessionProgress   *float64    `json:"session_progress,omitempty"`
	SessionStart      string      `json:"session_start,omitempty"`
	TimeRemaining     string      `json:"time_remaining,omitempty"`
	TokenCount        int64       `json:"token_count"`
	Usage             *UsageRatio `json:"usage,omitempty"`
}

// IsErrorPlan reports whether the plan describes a failure to reach the CLI
func (p Plan) IsErrorPlan() bool {
	switch p {
	case PlanAccessError, PlanError, PlanNotInstalled:
		return true
	}
	return false
}

// Float returns a pointer to v, for optional record fields
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for optional record fields
func Int(v int64) *int64 {
	return &v
}
