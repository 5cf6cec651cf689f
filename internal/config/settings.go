package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings represents the structure of ~/.usagebar/settings.json (or settings.yaml).
// Pointer fields distinguish "not set" from the zero value.
type Settings struct {
	Command           string   `json:"command,omitempty" yaml:"command,omitempty"`
	Currency          string   `json:"currency,omitempty" yaml:"currency,omitempty"`
	Debug             *bool    `json:"debug,omitempty" yaml:"debug,omitempty"`
	Enabled           *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	HistoryEnabled    *bool    `json:"history_enabled,omitempty" yaml:"history_enabled,omitempty"`
	HistoryLimit      *int     `json:"history_limit,omitempty" yaml:"history_limit,omitempty"`
	IntervalSeconds   *int     `json:"interval_seconds,omitempty" yaml:"interval_seconds,omitempty"`
	JPYRate           *float64 `json:"jpy_rate,omitempty" yaml:"jpy_rate,omitempty"`
	LiveCommand       string   `json:"live_command,omitempty" yaml:"live_command,omitempty"`
	MaxLogFiles       *int     `json:"max_log_files,omitempty" yaml:"max_log_files,omitempty"`
	NotifyBurnRate    *bool    `json:"notify_burn_rate,omitempty" yaml:"notify_burn_rate,omitempty"`
	ShowTimeRemaining *bool    `json:"show_time_remaining,omitempty" yaml:"show_time_remaining,omitempty"`
	TimeoutSeconds    *int     `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
}

// Validate checks values that cannot be expressed by the type alone
func (s *Settings) Validate() error {
	if s.Currency != "" {
		if _, err := ParseCurrency(s.Currency); err != nil {
			return err
		}
	}
	if s.IntervalSeconds != nil && *s.IntervalSeconds <= 0 {
		return fmt.Errorf("interval_seconds must be positive, got %d", *s.IntervalSeconds)
	}
	if s.TimeoutSeconds != nil && *s.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", *s.TimeoutSeconds)
	}
	if s.JPYRate != nil && *s.JPYRate <= 0 {
		return fmt.Errorf("jpy_rate must be positive, got %g", *s.JPYRate)
	}
	if s.HistoryLimit != nil && *s.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", *s.HistoryLimit)
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadSettings loads settings from GetSettingsPath().
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path, decoding YAML or JSON
// by file extension
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
		}
	} else if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return &settings, nil
}

// SaveSettings saves settings to GetSettingsPath()
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo writes settings to path, keeping the file's format
func SaveSettingsTo(path string, settings *Settings) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(settings)
	} else {
		data, err = json.MarshalIndent(settings, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	// Write through a temp file so the watcher never sees a half-written file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
