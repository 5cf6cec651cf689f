package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"usagebar/internal/config"
	"usagebar/internal/domain"
	"usagebar/internal/theme"
)

// Color thresholds
const (
	BurnRateError       = 50000.0 // tokens/min
	BurnRateWarning     = 30000.0 // tokens/min
	UsageErrorPercent   = 90.0
	UsageWarningPercent = 75.0
)

const (
	tooltipTitle     = "Claude Code Usage Stats"
	tooltipSeparator = "─────────────────────────"
)

// BurnRateColor classifies a burn rate: below 30,000/min is neutral,
// from 30,000 warning, from 50,000 error
func BurnRateColor(ratePerMinute float64) domain.ColorHint {
	switch {
	case ratePerMinute >= BurnRateError:
		return domain.ColorError
	case ratePerMinute >= BurnRateWarning:
		return domain.ColorWarning
	}
	return domain.ColorNeutral
}

// UsageColor classifies how much of a usage-based budget is spent
func UsageColor(percentage float64) domain.ColorHint {
	switch {
	case percentage >= UsageErrorPercent:
		return domain.ColorError
	case percentage >= UsageWarningPercent:
		return domain.ColorWarning
	}
	return domain.ColorNeutral
}

// FormatTokens renders a token count with a K/M/B suffix and one decimal
func FormatTokens(tokens int64) string {
	v := float64(tokens)
	switch {
	case tokens >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1e9)
	case tokens >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1e6)
	case tokens >= 1_000:
		return fmt.Sprintf("%.1fK", v/1e3)
	}
	return strconv.FormatInt(tokens, 10)
}

// FormatCost renders a USD amount in the configured currency
func FormatCost(usd float64, cfg config.DisplayConfig) string {
	if cfg.Currency == config.CurrencyJPY {
		return fmt.Sprintf("¥%.0f", math.Round(usd*cfg.JPYRate))
	}
	return fmt.Sprintf("$%.2f", usd)
}

func formatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// planBadge is the leading status segment
func planBadge(rec *domain.UsageRecord) string {
	switch rec.Plan {
	case domain.PlanMax:
		return theme.IconMax + " MAX"
	case domain.PlanPro:
		return theme.IconPro + " Pro"
	case domain.PlanUsageBased:
		if rec.Usage != nil {
			return fmt.Sprintf("%s %s/%s", theme.IconUsage, formatUSD(rec.Usage.Current), formatUSD(rec.Usage.Limit))
		}
	}
	return theme.IconCloud
}

// planLabel is the plan as written in the tooltip
func planLabel(rec *domain.UsageRecord) string {
	label := string(rec.Plan)
	if rec.Plan == domain.PlanMax {
		label = "MAX"
	}
	if rec.PlanInferred {
		label += " (estimated)"
	}
	return label
}

// Present renders a parsed record into the status element
func Present(rec *domain.UsageRecord, cfg config.DisplayConfig) domain.StatusView {
	if rec == nil {
		return PresentUnparsed()
	}

	return domain.StatusView{
		Color:   recordColor(rec),
		Text:    statusText(rec, cfg),
		Tooltip: tooltip(rec, cfg),
	}
}

func recordColor(rec *domain.UsageRecord) domain.ColorHint {
	color := domain.ColorNeutral
	if rec.BurnRatePerMinute != nil {
		color = color.Max(BurnRateColor(*rec.BurnRatePerMinute))
	}
	if rec.Plan == domain.PlanUsageBased && rec.Usage != nil {
		color = color.Max(UsageColor(rec.Usage.Percentage))
	}
	if rec.Plan.IsErrorPlan() {
		color = domain.ColorError
	}
	return color
}

func statusText(rec *domain.UsageRecord, cfg config.DisplayConfig) string {
	if rec.Plan.IsErrorPlan() {
		return theme.IconError + " " + string(rec.Plan)
	}

	parts := []string{
		planBadge(rec),
		rec.ModelName,
		theme.IconArrow,
		FormatTokens(rec.TokenCount),
	}
	if rec.Cost != nil {
		parts = append(parts, FormatCost(*rec.Cost, cfg))
	}
	if rec.SessionProgress != nil {
		parts = append(parts, fmt.Sprintf("%s %.1f%%", theme.IconProgress, *rec.SessionProgress))
	}
	if cfg.ShowTimeRemaining && rec.TimeRemaining != "" {
		parts = append(parts, theme.IconRemaining+" "+rec.TimeRemaining)
	}
	if rec.IsActiveSession {
		parts = append(parts, theme.IconActive)
	}

	return strings.Join(parts, " ")
}

func tooltip(rec *domain.UsageRecord, cfg config.DisplayConfig) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(tooltipTitle)
	line(tooltipSeparator)

	if rec.ModelName != "" && rec.ModelName != domain.UnknownModel {
		line("Model: %s", rec.ModelName)
	}
	if rec.TokenCount > 0 {
		line("Tokens: %s", FormatTokens(rec.TokenCount))
	}
	if rec.Cost != nil {
		line("Cost: %s", FormatCost(*rec.Cost, cfg))
		if cfg.Currency == config.CurrencyJPY {
			line("(Rate: $1 = ¥%s)", humanize.Ftoa(cfg.JPYRate))
		}
	}
	if rec.SessionStart != "" {
		line("Session Start: %s", rec.SessionStart)
	}
	if rec.SessionEnd != "" {
		line("Session End: %s", rec.SessionEnd)
	}
	if rec.SessionProgress != nil {
		line("Session Progress: %.1f%%", *rec.SessionProgress)
	}
	if rec.TimeRemaining != "" {
		line("Time Remaining: %s", rec.TimeRemaining)
	}
	if rec.BurnRatePerMinute != nil {
		line("Burn Rate: %s tokens/min", humanize.Commaf(*rec.BurnRatePerMinute))
	}
	if rec.ProjectedTokens != nil {
		line("Projected Tokens: %s", FormatTokens(*rec.ProjectedTokens))
	}
	if rec.ProjectedCost != nil {
		line("Projected Cost: %s", FormatCost(*rec.ProjectedCost, cfg))
	}
	if rec.Usage != nil {
		line("Usage: %s / %s (%.1f%%)", formatUSD(rec.Usage.Current), formatUSD(rec.Usage.Limit), rec.Usage.Percentage)
		line("Remaining Budget: %s", formatUSD(rec.Usage.Remaining()))
	}

	line(tooltipSeparator)
	line("Plan: %s", planLabel(rec))
	if rec.Hint != "" {
		line("%s", rec.Hint)
	}
	if rec.IsActiveSession {
		line("Status: Active Session")
	}

	b.WriteString("\nPress d to open the live view")
	b.WriteString("\nPress r to refresh")

	return b.String()
}

// PresentError renders a failed cycle. The raw message goes to the tooltip.
func PresentError(err error) domain.StatusView {
	text := theme.IconError + " Error fetching usage"
	if pe, ok := domain.AsProcessError(err); ok && pe.Plan() != domain.PlanError {
		text = theme.IconError + " " + string(pe.Plan())
	}

	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	return domain.StatusView{
		Color:   domain.ColorError,
		Text:    text,
		Tooltip: "Error: " + msg + "\n\nPress r to retry",
	}
}

// PresentUnparsed renders output that carried no usable usage data
func PresentUnparsed() domain.StatusView {
	return domain.StatusView{
		Color:   domain.ColorError,
		Text:    theme.IconWarning + " Failed to parse usage data",
		Tooltip: "The usage command returned no usable data\n\nPress d to open the live view",
	}
}

// PresentFetching renders the in-flight state
func PresentFetching() domain.StatusView {
	return domain.StatusView{
		Color: domain.ColorNeutral,
		Text:  theme.IconFetching + " Fetching usage...",
	}
}

// Details lists the plan summary and the actions offered for a record
func Details(rec *domain.UsageRecord) []domain.DetailItem {
	var items []domain.DetailItem

	switch {
	case rec == nil:
		items = append(items, domain.DetailItem{
			Label:       theme.IconWarning + " Information Unavailable",
			Description: "Usage data could not be retrieved",
		})
	case rec.Plan == domain.PlanMax:
		items = append(items, domain.DetailItem{
			Label:       theme.IconMax + " Claude Max Subscription",
			Description: "Unlimited usage included",
		})
	case rec.Plan == domain.PlanPro:
		items = append(items, domain.DetailItem{
			Label:       theme.IconPro + " Claude Pro Subscription",
			Description: "Enhanced features and priority access",
		})
	case rec.Plan == domain.PlanUsageBased && rec.Usage != nil:
		items = append(items,
			domain.DetailItem{
				Label:       theme.IconUsage + " Usage-based Plan",
				Description: fmt.Sprintf("%s / %s (%.1f%%)", formatUSD(rec.Usage.Current), formatUSD(rec.Usage.Limit), rec.Usage.Percentage),
			},
			domain.DetailItem{
				Label:       "Remaining Budget",
				Description: formatUSD(rec.Usage.Remaining()),
			},
		)
	case rec.Plan == domain.PlanTokenBased:
		items = append(items, domain.DetailItem{
			Label:       "Token-based Usage",
			Description: "Check Claude Code dashboard for usage details",
		})
	case rec.Plan == domain.PlanAvailable:
		items = append(items, domain.DetailItem{
			Label:       "Claude Code Available",
			Description: "Cost information available online",
		})
	case rec.Plan == domain.PlanNotInstalled:
		items = append(items, domain.DetailItem{
			Label:       theme.IconError + " Claude Code CLI Not Found",
			Description: "Please install Claude Code CLI",
		})
	case rec.Plan.IsErrorPlan():
		items = append(items, domain.DetailItem{
			Label:       theme.IconWarning + " " + string(rec.Plan),
			Description: rec.Hint,
		})
	default:
		items = append(items, domain.DetailItem{
			Label:       "Information Unavailable",
			Description: "Cost data could not be retrieved",
		})
	}

	if rec != nil && rec.TokenCount > 0 {
		items = append(items, domain.DetailItem{
			Label:       "Tokens",
			Description: humanize.Comma(rec.TokenCount),
		})
	}

	items = append(items,
		domain.DetailItem{
			Action:      domain.ActionRefresh,
			Label:       theme.IconFetching + " Refresh Status",
			Description: "Update the current status",
		},
		domain.DetailItem{
			Action:      domain.ActionDetails,
			Label:       "Open Live View",
			Description: "Run the live usage monitor",
		},
	)

	return items
}
