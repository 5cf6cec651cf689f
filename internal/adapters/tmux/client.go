package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"usagebar/internal/logging"
	"usagebar/internal/ports"
)

// Client drives the tmux binary
type Client struct {
	binary string
}

// Compile-time interface verification
var _ ports.TmuxConfigurator = (*Client)(nil)

// NewClient creates a new Client instance
func NewClient() *Client {
	return &Client{binary: "tmux"}
}

// InsideTmux reports whether the current process runs inside a tmux client
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// SourceFile sources a tmux configuration file
func (c *Client) SourceFile(configPath string) error {
	out, err := exec.Command(c.binary, "source-file", configPath).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		logging.Logger.Warn("tmux source-file failed", "path", configPath, "output", msg, "error", err)
		if msg != "" {
			return fmt.Errorf("tmux source-file %s: %s: %w", configPath, msg, err)
		}
		return fmt.Errorf("tmux source-file %s: %w", configPath, err)
	}
	logging.Logger.Info("tmux configuration reloaded", "path", configPath)
	return nil
}
