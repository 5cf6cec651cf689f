//go:build !windows

package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"usagebar/internal/logging"
	"usagebar/internal/ports"
)

// ctrlQ detaches from the live view
const ctrlQ = 17

// PTYRunner implements ports.LiveRunner by attaching the command to a
// pseudo terminal wired to the current stdin/stdout
type PTYRunner struct {
	stdin  *os.File
	stdout io.Writer
}

// Compile-time interface verification
var _ ports.LiveRunner = (*PTYRunner)(nil)

// NewPTYRunner creates a live runner bound to the process terminal
func NewPTYRunner() *PTYRunner {
	return &PTYRunner{stdin: os.Stdin, stdout: os.Stdout}
}

// Command returns the shell command for the live view, for callers that
// hand the terminal over themselves (tea.ExecProcess)
func (r *PTYRunner) Command(command string) *exec.Cmd {
	return shellCommand(context.Background(), command)
}

// RunLive runs command in a PTY until it exits, ctx is cancelled or the
// user presses Ctrl+Q
func (r *PTYRunner) RunLive(ctx context.Context, command string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd := shellCommand(ctx, command)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start live view: %w", err)
	}
	defer ptmx.Close()

	fd := int(r.stdin.Fd())
	if term.IsTerminal(fd) {
		// Keep the PTY size in sync with ours
		resize := make(chan os.Signal, 1)
		signal.Notify(resize, syscall.SIGWINCH)
		resizeDone := make(chan struct{})
		go func() {
			defer close(resizeDone)
			for range resize {
				if err := pty.InheritSize(r.stdin, ptmx); err != nil {
					logging.Logger.Debug("Failed to resize pty", "error", err)
				}
			}
		}()
		defer func() {
			signal.Stop(resize)
			close(resize)
			<-resizeDone
		}()
		resize <- syscall.SIGWINCH

		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to set raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}

	// The reader is cancelled once the child exits so no keystroke meant for
	// the caller is consumed after the live view ends
	stdin, err := cancelreader.NewReader(r.stdin)
	if err != nil {
		return fmt.Errorf("failed to read from terminal: %w", err)
	}
	defer stdin.Close()

	go func() {
		io.Copy(r.stdout, ptmx)
	}()

	inputDone := make(chan struct{})
	go func() {
		defer close(inputDone)
		forwardInput(stdin, ptmx, cancel)
	}()

	err = cmd.Wait()
	stdin.Cancel()
	<-inputDone

	if ctx.Err() != nil {
		// Detached or cancelled: not a failure of the live view
		return nil
	}
	if err != nil {
		return fmt.Errorf("live view exited: %w", err)
	}
	return nil
}

// forwardInput copies keystrokes from in to the PTY until in fails or the
// user presses Ctrl+Q, which calls detach
func forwardInput(in io.Reader, out io.Writer, detach func()) {
	buf := make([]byte, 1024)
	for {
		n, err := in.Read(buf)
		if i := bytes.IndexByte(buf[:n], ctrlQ); i >= 0 {
			out.Write(buf[:i])
			detach()
			return
		}
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			return
		}
	}
}
