//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strconv"
)

// notify uses osascript; Glass matches the macOS completion sound
func notify(title, message string) error {
	script := fmt.Sprintf("display notification %s with title %s sound name \"Glass\"",
		strconv.Quote(message), strconv.Quote(title))
	return exec.Command("osascript", "-e", script).Run()
}
