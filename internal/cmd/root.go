package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"usagebar/internal/config"
	"usagebar/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"USAGEBAR_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"USAGEBAR_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"USAGEBAR_MAX_LOG_FILES"`

	Watch    WatchCmd    `cmd:"" help:"Show the usage status in a terminal UI (default)" default:"1"`
	Status   StatusCmd   `cmd:"status" help:"Print the status recorded by the daemon (for the tmux status bar)"`
	Details  DetailsCmd  `cmd:"details" help:"Open the live usage view"`
	Parse    ParseCmd    `cmd:"parse" help:"Parse usage output once and print the rendered status"`
	History  HistoryCmd  `cmd:"history" help:"List recorded usage snapshots"`
	Logs     LogsCmd     `cmd:"logs" help:"Show entries from the debug logs"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, edit)"`
	Setup    SetupCmd    `cmd:"setup" help:"Configure tmux status bar integration automatically"`
	Daemon   DaemonCmd   `cmd:"daemon" help:"Manage the background poller service"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the status UI over SSH"`

	// Internal fields (not flags)
	Container    *Container       `kong:"-"`
	settings     *config.Settings `kong:"-"`
	settingsPath string           `kong:"-"`
}

// SetSettings sets the settings file path and its loaded content
func (c *CLI) SetSettings(path string, settings *config.Settings) {
	c.settingsPath = path
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings file > defaults. Kong has
	// already applied flags and env; a setting only fills what is still default.
	_, inherited := os.LookupEnv(logging.EnvDebug)
	if c.settings != nil {
		if _, hasEnv := os.LookupEnv(logging.EnvMaxFiles); !hasEnv &&
			c.MaxLogFiles == logging.DefaultMaxLogFiles && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
		if !c.Debug && !inherited && c.settings.Debug != nil && *c.settings.Debug {
			c.Debug = true
		}
	}

	opts := logging.Options{Debug: c.Debug, File: c.DebugFile, MaxFiles: c.MaxLogFiles}
	// Inherited debug stays quiet so the tmux status line is not polluted
	if !inherited {
		opts.Announce = os.Stderr
	}
	logFilePath, err := logging.Initialize(opts)
	if err != nil {
		return err
	}

	// Child processes (the daemon started by the service manager, the live
	// view) inherit the debug settings and append to the same file
	if logFilePath != "" {
		os.Setenv(logging.EnvDebug, "1")
		os.Setenv(logging.EnvDebugFile, logFilePath)
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Created after logging so the GORM logger has somewhere to write
	c.Container = NewContainer(c.settingsPath, c.settings)

	logging.Logger.Debug("CLI initialized",
		"settings_path", c.settingsPath,
		"command", c.Container.Config.Command,
		"interval", c.Container.Config.Interval().String())
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
