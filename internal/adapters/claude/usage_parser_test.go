package claude

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usagebar/internal/domain"
)

const blocksOutput = `Block Start: 7/9/2025, 1:00:00 AM (2h 30m elapsed, 2h 30m remaining) ACTIVE
Progress: 50.0%
Tokens: 52,252 (Burn Rate: 1,200 token/min)
Cost: $3.87
Projected Tokens: 104.5k
Projected Cost: $7.74
⚙️  Models: opus-4, sonnet-4
`

func TestParse_BlocksOutput(t *testing.T) {
	p := NewUsageParser()

	got := p.Parse(blocksOutput)

	want := &domain.UsageRecord{
		BurnRatePerMinute: domain.Float(1200),
		Cost:              domain.Float(3.87),
		IsActiveSession:   true,
		ModelName:         "opus-4, sonnet-4",
		Plan:              domain.PlanMax,
		PlanInferred:      true,
		ProjectedCost:     domain.Float(7.74),
		ProjectedTokens:   domain.Int(104500),
		SessionEnd:        "12:30:00 PM",
		SessionProgress:   domain.Float(50),
		SessionStart:      "10:00:00 AM",
		TimeRemaining:     "2h 30m",
		TokenCount:        52252,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_LiveTokensWithoutPlanMarkers(t *testing.T) {
	p := NewUsageParser()

	got := p.Parse("Tokens: 52,252 (Burn Rate: 1,200 token/min)")

	require.NotNil(t, got)
	assert.Equal(t, int64(52252), got.TokenCount)
	require.NotNil(t, got.BurnRatePerMinute)
	assert.Equal(t, 1200.0, *got.BurnRatePerMinute)
	assert.Equal(t, domain.PlanInfoUnavailable, got.Plan)
	assert.Equal(t, HintInfoUnavailable, got.Hint)
	assert.Empty(t, got.TimeRemaining)
	assert.Nil(t, got.Cost)
}

func TestParse_ReturnsNil(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", " \n\t "},
		{"error report", "Error: failed to load usage data"},
		{"no data directories", "No valid Claude data directories found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, NewUsageParser().Parse(tt.text))
		})
	}
}

func TestParse_PlanChecklist(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		plan     domain.Plan
		hint     string
		inferred bool
	}{
		{"max marker", "You are on a Claude Max subscription.", domain.PlanMax, "", false},
		{"max marker alt", "Note: your subscription includes Claude Code usage", domain.PlanMax, "", false},
		{"pro marker", "Claude Pro", domain.PlanPro, "", false},
		{"pro plan", "Current plan: Pro plan", domain.PlanPro, "", false},
		{"token pricing", "This uses token-based pricing, see console.anthropic.com", domain.PlanTokenBased, "", false},
		{"token pricing without console", "This uses token-based pricing", domain.PlanAvailable, HintAvailable, false},
		{"usage ratio", "Spent $12.50 / $100.00 this month", domain.PlanUsageBased, "", false},
		{"tokens used", "1,234 tokens used today", domain.PlanTokenBased, HintTokenUsage, false},
		{"tokens processed", "98765 processed", domain.PlanTokenBased, HintTokenUsage, false},
		{"heuristic max", "opus-4 | 1h 20m remaining", domain.PlanMax, "", true},
		{"heuristic pro", "sonnet-4 | Remaining: 3h", domain.PlanPro, "", true},
		{"not installed", "bash: claude: command not found", domain.PlanNotInstalled, HintNotInstalled, false},
		{"permission", "open /home/u/.claude: permission denied", domain.PlanAccessError, HintAccessError, false},
		{"cost keyword", "Total cost is shown in the console", domain.PlanAvailable, HintAvailable, false},
		{"pricing keyword", "See Pricing for details", domain.PlanAvailable, HintAvailable, false},
		{"nothing", "hello world", domain.PlanInfoUnavailable, HintInfoUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewUsageParser().Parse(tt.text)

			require.NotNil(t, got)
			assert.Equal(t, tt.plan, got.Plan)
			assert.Equal(t, tt.hint, got.Hint)
			assert.Equal(t, tt.inferred, got.PlanInferred)
		})
	}
}

func TestParse_MaxMarkerWinsOverEverything(t *testing.T) {
	inputs := []string{
		"Claude Max subscription",
		"Claude Max subscription\nClaude Pro\n$5.00 / $100.00",
		"1,000 tokens used\nClaude Max subscription\ntoken-based pricing console.anthropic.com",
		"sonnet-4 2h remaining\nCost: $1.00\nClaude Max subscription",
		"bash: claude: command not found\nClaude Max subscription",
		"Claude Max subscription\nError: rate limited",
		"No valid Claude data directories found\nyour subscription includes Claude Code usage",
	}

	for _, in := range inputs {
		got := NewUsageParser().Parse(in)
		require.NotNil(t, got, in)
		assert.Equal(t, domain.PlanMax, got.Plan, in)
		assert.False(t, got.PlanInferred, in)
	}
}

func TestParse_UsageRatioPercentage(t *testing.T) {
	tests := []struct {
		text    string
		current float64
		limit   float64
	}{
		{"$12.50 / $100.00", 12.5, 100},
		{"$3/$7", 3, 7},
		{"usage $0.10  /  $0.30", 0.1, 0.3},
		{"$150 / $100", 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := NewUsageParser().Parse(tt.text)

			require.NotNil(t, got)
			require.NotNil(t, got.Usage)
			assert.Equal(t, domain.PlanUsageBased, got.Plan)
			assert.Equal(t, tt.current, got.Usage.Current)
			assert.Equal(t, tt.limit, got.Usage.Limit)
			assert.Equal(t, tt.current/tt.limit*100, got.Usage.Percentage)
		})
	}
}

func TestParse_UsageRatioKeptUnderExplicitPlan(t *testing.T) {
	got := NewUsageParser().Parse("Claude Pro\n$25.00 / $50.00")

	require.NotNil(t, got)
	assert.Equal(t, domain.PlanPro, got.Plan)
	require.NotNil(t, got.Usage)
	assert.Equal(t, 50.0, got.Usage.Percentage)
}

func TestParse_UsageRatioZeroLimit(t *testing.T) {
	got := NewUsageParser().Parse("$5.00 / $0")

	require.NotNil(t, got)
	require.NotNil(t, got.Usage)
	assert.Equal(t, 0.0, got.Usage.Percentage)
}

func TestParse_Tokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
	}{
		{"live format", "Tokens: 1,234,567 (Burn Rate: 10 token/min)", 1234567},
		{"plain format", "Tokens: 8,000", 8000},
		{"kilo suffix", "session (1.5k tokens)", 1500},
		{"mega suffix", "session (2M tokens)", 2000000},
		{"giga suffix", "session (0.5B tokens)", 500000000},
		{"bare number", "session (42 tokens)", 42},
		{"none", "no numbers here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewUsageParser().Parse(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.TokenCount)
		})
	}
}

func TestParse_Model(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"⚙️  Models: opus-4, sonnet-4\n", "opus-4, sonnet-4"},
		{"Models: haiku-4  \nTokens: 1", "haiku-4"},
		{"using sonnet-4 and haiku-4", "sonnet-4"},
		{"haiku-4 only", "haiku-4"},
		{"Tokens: 10", domain.UnknownModel},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := NewUsageParser().Parse(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.ModelName)
		})
	}
}

func TestParse_TimeRemaining(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"live label", "Remaining: 2h 15m (06:00:00 AM)", "2h 15m"},
		{"live label hours only", "Remaining: 2h (06:00:00 AM)", "2h"},
		{"fallback", "block 45m remaining", "45m"},
		{"suffixed tokens are not durations", "(1.5m tokens)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewUsageParser().Parse(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.TimeRemaining)
		})
	}
}

func TestParse_SessionEndNeedsStart(t *testing.T) {
	got := NewUsageParser().Parse("2h remaining, 10.5%")

	require.NotNil(t, got)
	assert.Empty(t, got.SessionStart)
	assert.Empty(t, got.SessionEnd)
	require.NotNil(t, got.SessionProgress)
	assert.Equal(t, 10.5, *got.SessionProgress)
}

func TestParse_CustomDisplayOffset(t *testing.T) {
	p := NewUsageParserWithOffset(0)

	got := p.Parse("7/9/2025, 11:15:30 PM 1h 45m remaining")

	require.NotNil(t, got)
	assert.Equal(t, "11:15:30 PM", got.SessionStart)
	assert.Equal(t, "01:00:30 AM", got.SessionEnd)
}

func TestParse_ProgressClamped(t *testing.T) {
	got := NewUsageParser().Parse("Projected 135.2%")

	require.NotNil(t, got)
	require.NotNil(t, got.SessionProgress)
	assert.Equal(t, 100.0, *got.SessionProgress)
}
