package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPollerDisposed  = errors.New("poller disposed")
	ErrPollerStarted   = errors.New("poller already started")
	ErrRefreshThrottle = errors.New("refresh requested too often")
	ErrStatusNotFound  = errors.New("no status recorded yet")
	ErrUnparsedOutput  = errors.New("failed to parse usage data")
)

// ProcessErrorKind classifies why the usage command failed
type ProcessErrorKind string

const (
	ProcessExit             ProcessErrorKind = "exit"
	ProcessGeneric          ProcessErrorKind = "generic"
	ProcessNotFound         ProcessErrorKind = "not-found"
	ProcessPermissionDenied ProcessErrorKind = "permission-denied"
	ProcessTimeout          ProcessErrorKind = "timeout"
)

// ProcessError is returned by the command runner when the usage command
// could not be run or did not finish successfully.
type ProcessError struct {
	Command string
	Err     error
	Kind    ProcessErrorKind
	Stderr  string
}

func (e *ProcessError) Error() string {
	msg := e.Cause()
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return fmt.Sprintf("command %q failed: %s", e.Command, msg)
}

// Unwrap returns the underlying exec error
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Cause returns the short human-readable reason
func (e *ProcessError) Cause() string {
	switch e.Kind {
	case ProcessNotFound:
		return "not found"
	case ProcessPermissionDenied:
		return "permission denied"
	case ProcessTimeout:
		return "timeout"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Plan maps the failure onto the plan classification shown in the status bar
func (e *ProcessError) Plan() Plan {
	switch e.Kind {
	case ProcessNotFound:
		return PlanNotInstalled
	case ProcessPermissionDenied:
		return PlanAccessError
	}
	return PlanError
}

// AsProcessError extracts a *ProcessError from err, if any
func AsProcessError(err error) (*ProcessError, bool) {
	var pe *ProcessError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
