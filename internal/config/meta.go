package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue returns the default for a settings key, so the example
// doubles as documentation of the defaults
func generateExampleValue(t reflect.Type, fieldName string) any {
	defaults := DefaultPollerConfig()

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			switch fieldName {
			case "enabled":
				return defaults.Enabled
			case "show_time_remaining":
				return defaults.Display.ShowTimeRemaining
			case "history_enabled":
				return defaults.HistoryEnabled
			case "notify_burn_rate":
				return defaults.NotifyBurnRate
			}
			return false
		case reflect.Int:
			switch fieldName {
			case "interval_seconds":
				return int(defaults.Display.UpdateInterval.Seconds())
			case "timeout_seconds":
				return int(defaults.Timeout.Seconds())
			case "history_limit":
				return defaults.HistoryLimit
			case "max_log_files":
				return 1000
			}
			return 10
		case reflect.Float64:
			if fieldName == "jpy_rate" {
				return defaults.Display.JPYRate
			}
			return 1.0
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "command":
			return defaults.Command
		case "live_command":
			return defaults.LiveCommand
		case "currency":
			return string(defaults.Display.Currency)
		default:
			return "example"
		}
	}

	return nil
}
