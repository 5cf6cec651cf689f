package process

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/ports"
)

// Exit codes the shell uses for a missing or non-executable command
const (
	exitNotExecutable = 126
	exitNotFound      = 127
)

// waitDelay bounds how long Run waits for grandchildren (npx) that keep the
// output pipes open after the shell was killed
const waitDelay = 2 * time.Second

// ShellRunner implements ports.CommandRunner with one OS process per call
type ShellRunner struct{}

// Compile-time interface verification
var _ ports.CommandRunner = (*ShellRunner)(nil)

// NewShellRunner creates a new shell runner
func NewShellRunner() *ShellRunner {
	return &ShellRunner{}
}

// Run executes command through the host shell and returns its stdout
func (r *ShellRunner) Run(ctx context.Context, command string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := shellCommand(ctx, command)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	logging.Logger.Debug("Usage command finished",
		"command", command,
		"duration", time.Since(start),
		"stdout_bytes", stdout.Len(),
		"error", err)

	if err != nil {
		return "", classify(ctx, command, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// classify maps an exec failure onto a ProcessError kind
func classify(ctx context.Context, command string, err error, stderr string) *domain.ProcessError {
	pe := &domain.ProcessError{
		Command: command,
		Err:     err,
		Kind:    domain.ProcessGeneric,
		Stderr:  stderr,
	}

	lower := strings.ToLower(stderr)
	var exitErr *exec.ExitError

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		pe.Kind = domain.ProcessTimeout
	case errors.Is(err, exec.ErrNotFound):
		pe.Kind = domain.ProcessNotFound
	case errors.Is(err, os.ErrPermission):
		pe.Kind = domain.ProcessPermissionDenied
	case errors.As(err, &exitErr):
		switch {
		case exitErr.ExitCode() == exitNotFound,
			strings.Contains(lower, "command not found"),
			strings.Contains(lower, "not recognized as an internal or external command"):
			pe.Kind = domain.ProcessNotFound
		case exitErr.ExitCode() == exitNotExecutable,
			strings.Contains(lower, "permission denied"):
			pe.Kind = domain.ProcessPermissionDenied
		default:
			pe.Kind = domain.ProcessExit
		}
	}

	return pe
}
