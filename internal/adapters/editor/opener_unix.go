//go:build !windows

package editor

import (
	"os/exec"
	"runtime"
)

var defaultEditors = []string{
	"nano",
	"vim",
	"vi",
}

func findPlatformEditor(path string) (string, []string) {
	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor, []string{path}
		}
	}

	if runtime.GOOS == "darwin" {
		// TextEdit; -W waits for it to close
		return "open", []string{"-W", "-t", path}
	}
	return "", nil
}
