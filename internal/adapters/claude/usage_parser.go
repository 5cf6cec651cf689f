package claude

import (
	"regexp"
	"strings"
	"time"

	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/ports"
)

// Output signatures that mean the CLI produced no usage data at all
var errorSignatures = []string{
	"Error:",
	"No valid Claude data directories found",
}

var (
	sessionStartPattern    = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4}), (\d{1,2}:\d{2}:\d{2} [AP]M)`)
	remainingPattern       = regexp.MustCompile(`(\d+h \d+m|\d+h|\d+m) remaining`)
	progressPattern        = regexp.MustCompile(`(\d+\.?\d*)%`)
	timeRemainingPattern   = regexp.MustCompile(`Remaining: (\d+h(?: \d+m)?)`)
	durationPattern        = regexp.MustCompile(`(?:^|[^\d.,])(\d+h \d+m|\d+h|\d+m)\b`)
	liveTokensPattern      = regexp.MustCompile(`Tokens: ([\d,]+) \(Burn Rate:`)
	tokensPattern          = regexp.MustCompile(`Tokens: ([\d,]+)`)
	suffixedTokensPattern  = regexp.MustCompile(`(?i)\((\d+\.?\d*[kmb]?) tokens\)`)
	costPattern            = regexp.MustCompile(`Cost: \$?(\d+(?:\.\d+)?)`)
	projectedTokensPattern = regexp.MustCompile(`Tokens: ([\d,]+\.\d*[kmbKMB]?)`)
	burnRatePattern        = regexp.MustCompile(`Burn Rate: ([\d,]+) token/min`)
	gearModelsPattern      = regexp.MustCompile(`⚙️\s+Models: (.+)`)
	modelsPattern          = regexp.MustCompile(`Models: (.+)`)
	usageRatioPattern      = regexp.MustCompile(`\$(\d+(?:\.\d+)?)\s*/\s*\$(\d+(?:\.\d+)?)`)
)

// Model families recognised when the output has no "Models:" line, in priority order
var knownModels = []string{"opus-4", "sonnet-4", "haiku-4"}

// fieldRule fills one record field when its pattern matches
type fieldRule struct {
	name  string
	apply func(text string, rec *domain.UsageRecord)
}

// UsageParser implements ports.UsageParser for ccusage and `claude cost` output
type UsageParser struct {
	displayOffset time.Duration
	fields        []fieldRule
}

// Compile-time interface verification
var _ ports.UsageParser = (*UsageParser)(nil)

// NewUsageParser creates a parser using DefaultDisplayOffset
func NewUsageParser() *UsageParser {
	return NewUsageParserWithOffset(DefaultDisplayOffset)
}

// NewUsageParserWithOffset creates a parser with a custom display offset (for testing)
func NewUsageParserWithOffset(offset time.Duration) *UsageParser {
	p := &UsageParser{displayOffset: offset}
	p.fields = []fieldRule{
		{"session_start", p.parseSessionStart},
		{"session_end", p.parseSessionEnd},
		{"session_progress", parseSessionProgress},
		{"time_remaining", parseTimeRemaining},
		{"tokens", parseTokens},
		{"cost", parseCost},
		{"projected_tokens", parseProjectedTokens},
		{"projected_cost", parseProjectedCost},
		{"burn_rate", parseBurnRate},
		{"model", parseModel},
		{"active", parseActive},
		{"usage_ratio", parseUsageRatio},
	}
	return p
}

// Parse extracts a usage record from the command output. It returns nil when
// the output is empty or is an error report without a Max marker, and never
// panics.
func (p *UsageParser) Parse(text string) (rec *domain.UsageRecord) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Usage parser panicked", "panic", r)
			rec = nil
		}
	}()

	if strings.TrimSpace(text) == "" {
		return nil
	}
	// An explicit Max marker outranks any error report in the same output
	for _, sig := range errorSignatures {
		if strings.Contains(text, sig) && !containsAny(text, maxMarkers) {
			logging.Logger.Debug("Usage output is an error report", "signature", sig)
			return nil
		}
	}

	rec = &domain.UsageRecord{ModelName: domain.UnknownModel}
	for _, rule := range p.fields {
		rule.apply(text, rec)
	}

	rule := classifyPlan(text, rec)
	logging.Logger.Debug("Usage output parsed",
		"plan", rec.Plan,
		"plan_rule", rule,
		"tokens", rec.TokenCount,
		"model", rec.ModelName)

	return rec
}

func (p *UsageParser) parseSessionStart(text string, rec *domain.UsageRecord) {
	m := sessionStartPattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	shifted, err := ShiftClock(m[2], p.displayOffset)
	if err != nil {
		logging.Logger.Debug("Failed to shift session start", "value", m[2], "error", err)
		return
	}
	rec.SessionStart = shifted
}

func (p *UsageParser) parseSessionEnd(text string, rec *domain.UsageRecord) {
	if rec.SessionStart == "" {
		return
	}
	m := remainingPattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	end, err := AddRemaining(rec.SessionStart, m[1])
	if err != nil {
		return
	}
	rec.SessionEnd = end
}

func parseSessionProgress(text string, rec *domain.UsageRecord) {
	m := progressPattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	v, ok := parseGroupedFloat(m[1])
	if !ok {
		return
	}
	rec.SessionProgress = domain.Float(min(v, 100))
}

func parseTimeRemaining(text string, rec *domain.UsageRecord) {
	if m := timeRemainingPattern.FindStringSubmatch(text); m != nil {
		rec.TimeRemaining = m[1]
		return
	}
	if m := durationPattern.FindStringSubmatch(text); m != nil {
		rec.TimeRemaining = m[1]
	}
}

func parseTokens(text string, rec *domain.UsageRecord) {
	if m := liveTokensPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseGroupedInt(m[1]); ok {
			rec.TokenCount = v
			return
		}
	}
	if m := tokensPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseGroupedInt(m[1]); ok {
			rec.TokenCount = v
			return
		}
	}
	if m := suffixedTokensPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseSuffixed(m[1]); ok {
			rec.TokenCount = toTokens(v)
		}
	}
}

func parseCost(text string, rec *domain.UsageRecord) {
	m := costPattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	if v, ok := parseGroupedFloat(m[1]); ok {
		rec.Cost = domain.Float(v)
	}
}

func parseProjectedTokens(text string, rec *domain.UsageRecord) {
	m := projectedTokensPattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	if v, ok := parseSuffixed(m[1]); ok {
		rec.ProjectedTokens = domain.Int(toTokens(v))
	}
}

// parseProjectedCost reads the second "Cost:" occurrence; the first is the
// current cost
func parseProjectedCost(text string, rec *domain.UsageRecord) {
	all := costPattern.FindAllStringSubmatch(text, 2)
	if len(all) < 2 {
		return
	}
	if v, ok := parseGroupedFloat(all[1][1]); ok {
		rec.ProjectedCost = domain.Float(v)
	}
}

func parseBurnRate(text string, rec *domain.UsageRecord) {
	m := burnRatePattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	if v, ok := parseGroupedFloat(m[1]); ok {
		rec.BurnRatePerMinute = domain.Float(v)
	}
}

func parseModel(text string, rec *domain.UsageRecord) {
	if m := gearModelsPattern.FindStringSubmatch(text); m != nil {
		rec.ModelName = strings.TrimSpace(m[1])
		return
	}
	if m := modelsPattern.FindStringSubmatch(text); m != nil {
		rec.ModelName = strings.TrimSpace(m[1])
		return
	}
	for _, model := range knownModels {
		if strings.Contains(text, model) {
			rec.ModelName = model
			return
		}
	}
}

func parseActive(text string, rec *domain.UsageRecord) {
	rec.IsActiveSession = strings.Contains(text, "ACTIVE") || strings.Contains(text, "LIVE")
}

// parseUsageRatio fills the usage block for "$current / $limit" regardless of
// which plan rule wins later
func parseUsageRatio(text string, rec *domain.UsageRecord) {
	m := usageRatioPattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	current, ok1 := parseGroupedFloat(m[1])
	limit, ok2 := parseGroupedFloat(m[2])
	if !ok1 || !ok2 {
		return
	}

	var pct float64
	if limit > 0 {
		pct = current / limit * 100
	}
	rec.Usage = &domain.UsageRatio{
		Current:    current,
		Limit:      limit,
		Percentage: pct,
	}
}
