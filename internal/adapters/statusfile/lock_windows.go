//go:build windows

package statusfile

import (
	"os"

	"golang.org/x/sys/windows"
)

func lockExclusive(file *os.File) error {
	return lockRange(file, windows.LOCKFILE_EXCLUSIVE_LOCK)
}

func lockShared(file *os.File) error {
	return lockRange(file, 0)
}

func lockRange(file *os.File, flags uint32) error {
	var overlapped windows.Overlapped
	return windows.LockFileEx(windows.Handle(file.Fd()), flags, 0, 1, 0, &overlapped)
}

func unlockFile(file *os.File) error {
	var overlapped windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(file.Fd()), 0, 1, 0, &overlapped)
}
