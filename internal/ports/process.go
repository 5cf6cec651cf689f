package ports

import (
	"context"
	"time"
)

// CommandRunner runs the usage command through the host shell
type CommandRunner interface {
	// Run executes command and returns its stdout. Failures are returned as
	// *domain.ProcessError.
	Run(ctx context.Context, command string, timeout time.Duration) (string, error)
}

// LiveRunner runs a long-lived command attached to the current terminal
type LiveRunner interface {
	// RunLive blocks until the command exits or ctx is cancelled
	RunLive(ctx context.Context, command string) error
}
