//go:build linux

package notify

import "os/exec"

// notify uses notify-send from libnotify
func notify(title, message string) error {
	return exec.Command("notify-send", "-a", "usagebar", "-u", "normal", title, message).Run()
}
