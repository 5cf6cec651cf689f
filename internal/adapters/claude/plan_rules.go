package claude

import (
	"regexp"
	"strings"

	"usagebar/internal/domain"
)

// Hints attached to plans that carry no numbers of their own
const (
	HintAccessError     = "Permission or access issue with Claude CLI"
	HintAvailable       = "Cost information available - check https://docs.anthropic.com/en/docs/claude-code/costs"
	HintInfoUnavailable = "Cost command returned no usage data"
	HintNotInstalled    = "Claude Code CLI not found"
	HintTokenUsage      = "Token usage detected - check Claude Code dashboard for details"
)

var (
	maxMarkers          = []string{"Claude Max subscription", "your subscription includes Claude Code usage"}
	proMarkers          = []string{"Claude Pro", "Pro subscription", "Pro plan"}
	notFoundSignatures  = []string{"command not found", "claude: not found"}
	permissionPattern   = regexp.MustCompile(`(?i)permission denied|access denied|EACCES`)
	costKeywordPattern  = regexp.MustCompile(`(?i)\b(cost|pricing)\b`)
	tokensUsedPattern   = regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*(?:tokens?\s*)?(?:used|consumed|processed)`)
	sessionLimitMarkers = []string{"remaining", "Remaining"}
)

// planRule is one entry of the plan checklist: the first rule whose match
// returns true decides the plan
type planRule struct {
	name  string
	match func(text string, rec *domain.UsageRecord) bool
	apply func(text string, rec *domain.UsageRecord)
}

// planRules is evaluated top to bottom; the last rule always matches
var planRules = []planRule{
	{
		name:  "max_marker",
		match: func(text string, _ *domain.UsageRecord) bool { return containsAny(text, maxMarkers) },
		apply: setPlan(domain.PlanMax, ""),
	},
	{
		name:  "pro_marker",
		match: func(text string, _ *domain.UsageRecord) bool { return containsAny(text, proMarkers) },
		apply: setPlan(domain.PlanPro, ""),
	},
	{
		name: "token_pricing_marker",
		match: func(text string, _ *domain.UsageRecord) bool {
			return strings.Contains(text, "token-based pricing") && strings.Contains(text, "console.anthropic.com")
		},
		apply: setPlan(domain.PlanTokenBased, ""),
	},
	{
		name:  "usage_ratio",
		match: func(_ string, rec *domain.UsageRecord) bool { return rec.Usage != nil },
		apply: setPlan(domain.PlanUsageBased, ""),
	},
	{
		name:  "tokens_used",
		match: func(text string, _ *domain.UsageRecord) bool { return tokensUsedPattern.MatchString(text) },
		apply: setPlan(domain.PlanTokenBased, HintTokenUsage),
	},
	{
		// Best-effort: the CLI never states the plan, so opus-4 with a
		// session limit is read as Max and a session limit alone as Pro
		name:  "session_heuristic",
		match: func(text string, _ *domain.UsageRecord) bool { return containsAny(text, sessionLimitMarkers) },
		apply: applySessionHeuristic,
	},
	{
		name:  "not_found_signature",
		match: func(text string, _ *domain.UsageRecord) bool { return containsAny(text, notFoundSignatures) },
		apply: setPlan(domain.PlanNotInstalled, HintNotInstalled),
	},
	{
		name:  "permission_signature",
		match: func(text string, _ *domain.UsageRecord) bool { return permissionPattern.MatchString(text) },
		apply: setPlan(domain.PlanAccessError, HintAccessError),
	},
	{
		name:  "cost_keyword",
		match: func(text string, _ *domain.UsageRecord) bool { return costKeywordPattern.MatchString(text) },
		apply: setPlan(domain.PlanAvailable, HintAvailable),
	},
	{
		name:  "fallback",
		match: func(string, *domain.UsageRecord) bool { return true },
		apply: setPlan(domain.PlanInfoUnavailable, HintInfoUnavailable),
	},
}

// classifyPlan runs the checklist and returns the name of the rule that decided
func classifyPlan(text string, rec *domain.UsageRecord) string {
	for _, rule := range planRules {
		if !rule.match(text, rec) {
			continue
		}
		rule.apply(text, rec)
		return rule.name
	}
	return ""
}

func applySessionHeuristic(text string, rec *domain.UsageRecord) {
	rec.PlanInferred = true
	if strings.Contains(text, "opus-4") {
		rec.Plan = domain.PlanMax
		return
	}
	rec.Plan = domain.PlanPro
}

func setPlan(plan domain.Plan, hint string) func(string, *domain.UsageRecord) {
	return func(_ string, rec *domain.UsageRecord) {
		rec.Plan = plan
		rec.Hint = hint
	}
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
