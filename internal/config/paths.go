package config

import (
	"os"
	"path/filepath"
)

// GetHome returns USAGEBAR_HOME or ~/.usagebar default
func GetHome() string {
	home := os.Getenv("USAGEBAR_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".usagebar"
		}
		return filepath.Join(homeDir, ".usagebar")
	}
	return ExpandPath(home)
}

// GetDBPath returns $USAGEBAR_HOME/history.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "history.db")
}

// GetStatusFilePath returns $USAGEBAR_HOME/status.json, the last rendered status
// written by the daemon and read by `usagebar status`
func GetStatusFilePath() string {
	return filepath.Join(GetHome(), "status.json")
}

// GetSSHDir returns $USAGEBAR_HOME/ssh, where the SSH host key lives
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// GetSettingsPath returns the settings file in use.
// settings.yaml (or .yml) is used when present, otherwise settings.json.
func GetSettingsPath() string {
	home := GetHome()
	for _, name := range []string{"settings.yaml", "settings.yml"} {
		p := filepath.Join(home, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(home, "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
