//go:build !darwin && !linux

package notify

import "errors"

// notify has no desktop integration here; the caller rings the bell
func notify(title, message string) error {
	return errors.New("desktop notifications not supported")
}
