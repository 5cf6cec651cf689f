package notify

import (
	"fmt"
	"io"
	"os"

	"usagebar/internal/ports"
)

// Notifier implements ports.Notifier with the platform's notification tool.
// Platform-specific implementations are in notifier_*.go files with build tags.
type Notifier struct {
	bell io.Writer
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a desktop notifier
func NewNotifier() *Notifier {
	return &Notifier{bell: os.Stderr}
}

// Notify shows a notification, falling back to the terminal bell
func (n *Notifier) Notify(title, message string) error {
	if err := notify(title, message); err == nil {
		return nil
	}
	return n.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (n *Notifier) terminalBell() error {
	_, err := fmt.Fprint(n.bell, "\a")
	return err
}
