package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults for the poller and presenter
const (
	DefaultCommand           = "npx ccusage@latest blocks"
	DefaultHistoryLimit      = 500
	DefaultInterval          = 5 * time.Second
	DefaultJPYRate           = 150.0
	DefaultLiveCommand       = "npx ccusage@latest blocks --live"
	DefaultShowTimeRemaining = true
	DefaultTimeout           = 10 * time.Second
)

// Currency selects how costs are displayed
type Currency string

const (
	CurrencyJPY Currency = "JPY"
	CurrencyUSD Currency = "USD"
)

// ParseCurrency accepts USD or JPY in any case
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case CurrencyUSD:
		return CurrencyUSD, nil
	case CurrencyJPY:
		return CurrencyJPY, nil
	}
	return "", fmt.Errorf("unsupported currency %q (want USD or JPY)", s)
}

// DisplayConfig controls how a usage record is rendered
type DisplayConfig struct {
	Currency          Currency
	JPYRate           float64
	ShowTimeRemaining bool
	UpdateInterval    time.Duration
}

// DefaultDisplayConfig returns the presenter defaults
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Currency:          CurrencyUSD,
		JPYRate:           DefaultJPYRate,
		ShowTimeRemaining: DefaultShowTimeRemaining,
		UpdateInterval:    DefaultInterval,
	}
}

// PollerConfig is everything the poller needs for one configuration generation
type PollerConfig struct {
	Command        string
	Display        DisplayConfig
	Enabled        bool
	HistoryEnabled bool
	HistoryLimit   int
	LiveCommand    string
	NotifyBurnRate bool
	Timeout        time.Duration
}

// Interval is the poll period
func (c PollerConfig) Interval() time.Duration {
	return c.Display.UpdateInterval
}

// DefaultPollerConfig returns the built-in defaults
func DefaultPollerConfig() PollerConfig {
	return PollerConfig{
		Command:        DefaultCommand,
		Display:        DefaultDisplayConfig(),
		Enabled:        true,
		HistoryEnabled: false,
		HistoryLimit:   DefaultHistoryLimit,
		LiveCommand:    DefaultLiveCommand,
		NotifyBurnRate: false,
		Timeout:        DefaultTimeout,
	}
}

// Resolve applies settings on top of the defaults. A nil settings value
// yields the defaults.
func Resolve(s *Settings) PollerConfig {
	cfg := DefaultPollerConfig()
	if s == nil {
		return cfg
	}

	if s.Command != "" {
		cfg.Command = s.Command
	}
	if s.LiveCommand != "" {
		cfg.LiveCommand = s.LiveCommand
	}
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.IntervalSeconds != nil && *s.IntervalSeconds > 0 {
		cfg.Display.UpdateInterval = time.Duration(*s.IntervalSeconds) * time.Second
	}
	if s.TimeoutSeconds != nil && *s.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(*s.TimeoutSeconds) * time.Second
	}
	if s.Currency != "" {
		if c, err := ParseCurrency(s.Currency); err == nil {
			cfg.Display.Currency = c
		}
	}
	if s.JPYRate != nil && *s.JPYRate > 0 {
		cfg.Display.JPYRate = *s.JPYRate
	}
	if s.ShowTimeRemaining != nil {
		cfg.Display.ShowTimeRemaining = *s.ShowTimeRemaining
	}
	if s.NotifyBurnRate != nil {
		cfg.NotifyBurnRate = *s.NotifyBurnRate
	}
	if s.HistoryEnabled != nil {
		cfg.HistoryEnabled = *s.HistoryEnabled
	}
	if s.HistoryLimit != nil {
		cfg.HistoryLimit = *s.HistoryLimit
	}

	return cfg
}
