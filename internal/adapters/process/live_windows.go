//go:build windows

package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"usagebar/internal/ports"
)

// PTYRunner runs the live view on the console directly; there is no pty on windows
type PTYRunner struct {
	stdin  *os.File
	stdout io.Writer
}

// Compile-time interface verification
var _ ports.LiveRunner = (*PTYRunner)(nil)

// NewPTYRunner creates a live runner bound to the process console
func NewPTYRunner() *PTYRunner {
	return &PTYRunner{stdin: os.Stdin, stdout: os.Stdout}
}

// Command returns the shell command for the live view
func (r *PTYRunner) Command(command string) *exec.Cmd {
	return shellCommand(context.Background(), command)
}

// RunLive runs command attached to the console until it exits or ctx is cancelled
func (r *PTYRunner) RunLive(ctx context.Context, command string) error {
	cmd := shellCommand(ctx, command)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stdout

	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("live view exited: %w", err)
	}
	return nil
}
