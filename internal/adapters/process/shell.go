package process

import (
	"context"
	"os/exec"
	"runtime"
)

// shellCommand builds a command that runs line through the host shell
func shellCommand(ctx context.Context, line string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd.exe", "/C", line)
	}

	shell := "/bin/sh"
	if path, err := exec.LookPath("bash"); err == nil {
		shell = path
	}
	return exec.CommandContext(ctx, shell, "-c", line)
}
