package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"

	"usagebar/internal/config"
	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/ports"
)

var _ ports.CycleObserver = (*BurnRateAlerter)(nil)

// BurnRateAlerter sends a desktop notification when the status colour
// escalates from neutral to warning or from warning to error
type BurnRateAlerter struct {
	config   func() config.PollerConfig
	notifier ports.Notifier

	mu   sync.Mutex
	last domain.ColorHint
}

// NewBurnRateAlerter creates an alerter
func NewBurnRateAlerter(notifier ports.Notifier, cfg func() config.PollerConfig) *BurnRateAlerter {
	return &BurnRateAlerter{
		config:   cfg,
		last:     domain.ColorNeutral,
		notifier: notifier,
	}
}

// Observe implements ports.CycleObserver
func (a *BurnRateAlerter) Observe(_ context.Context, res domain.CycleResult) {
	// Failed commands are shown in red too, but they are not a usage alert
	if res.Record == nil || res.Record.Plan.IsErrorPlan() {
		return
	}

	a.mu.Lock()
	prev := a.last
	a.last = res.View.Color
	a.mu.Unlock()

	if res.View.Color <= prev || !a.config().NotifyBurnRate {
		return
	}

	title, message := alertText(res.Record, res.View.Color)
	if err := a.notifier.Notify(title, message); err != nil {
		logging.Logger.Warn("Failed to send usage alert", "cycle_id", res.ID, "error", err)
		return
	}
	logging.Logger.Info("Usage alert sent", "cycle_id", res.ID, "color", res.View.Color.String())
}

func alertText(rec *domain.UsageRecord, color domain.ColorHint) (string, string) {
	title := "Claude usage rising"
	if color == domain.ColorError {
		title = "Claude usage critical"
	}

	switch {
	case rec.Plan == domain.PlanUsageBased && rec.Usage != nil:
		return title, fmt.Sprintf("%.1f%% of the %s budget used", rec.Usage.Percentage, formatUSD(rec.Usage.Limit))
	case rec.BurnRatePerMinute != nil:
		return title, fmt.Sprintf("Burning %s tokens/min", humanize.Comma(int64(*rec.BurnRatePerMinute)))
	}
	return title, "Usage crossed a threshold"
}
