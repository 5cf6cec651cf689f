package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"usagebar/internal/logging"
	"usagebar/internal/ports"
)

// Opener implements ports.EditorOpener. Editors run in the foreground on the
// current terminal so that terminal editors work.
type Opener struct{}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens path in an editor and waits for it to exit
// Priority: cliEditor → $USAGEBAR_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor, args := findEditor(path, cliEditor)
	if editor == "" {
		return fmt.Errorf("no suitable editor found. Set --editor flag, $USAGEBAR_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := exec.Command(editor, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", editor, err)
	}
	return nil
}

// findEditor returns the editor binary and its arguments. Configured editors
// may carry flags ("code --wait").
func findEditor(path string, cliEditor string) (string, []string) {
	for _, configured := range []string{
		cliEditor,
		os.Getenv("USAGEBAR_EDITOR"),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	} {
		if fields := strings.Fields(configured); len(fields) > 0 {
			return fields[0], append(fields[1:], path)
		}
	}

	return findPlatformEditor(path)
}
