package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessError_Cause(t *testing.T) {
	tests := []struct {
		kind     ProcessErrorKind
		err      error
		expected string
	}{
		{ProcessNotFound, errors.New("exit status 127"), "not found"},
		{ProcessPermissionDenied, errors.New("exit status 126"), "permission denied"},
		{ProcessTimeout, errors.New("signal: killed"), "timeout"},
		{ProcessExit, errors.New("exit status 2"), "exit status 2"},
		{ProcessGeneric, nil, "unknown error"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			pe := &ProcessError{Command: "ccusage", Kind: tt.kind, Err: tt.err}
			assert.Equal(t, tt.expected, pe.Cause())
		})
	}
}

func TestProcessError_Plan(t *testing.T) {
	assert.Equal(t, PlanNotInstalled, (&ProcessError{Kind: ProcessNotFound}).Plan())
	assert.Equal(t, PlanAccessError, (&ProcessError{Kind: ProcessPermissionDenied}).Plan())
	assert.Equal(t, PlanError, (&ProcessError{Kind: ProcessTimeout}).Plan())
	assert.Equal(t, PlanError, (&ProcessError{Kind: ProcessExit}).Plan())
}

func TestProcessError_ErrorIncludesStderr(t *testing.T) {
	pe := &ProcessError{Command: "claude cost", Kind: ProcessNotFound, Stderr: "bash: claude: command not found"}

	assert.Equal(t, `command "claude cost" failed: not found: bash: claude: command not found`, pe.Error())
}

func TestAsProcessError_Wrapped(t *testing.T) {
	inner := &ProcessError{Command: "x", Kind: ProcessTimeout}
	wrapped := fmt.Errorf("poll cycle: %w", inner)

	pe, ok := AsProcessError(wrapped)

	require.True(t, ok)
	assert.Same(t, inner, pe)

	_, ok = AsProcessError(errors.New("plain"))
	assert.False(t, ok)
}

func TestColorHint_Max(t *testing.T) {
	assert.Equal(t, ColorWarning, ColorNeutral.Max(ColorWarning))
	assert.Equal(t, ColorError, ColorError.Max(ColorWarning))
	assert.Equal(t, ColorNeutral, ColorNeutral.Max(ColorNeutral))
}

func TestUsageRatio_Remaining(t *testing.T) {
	assert.InDelta(t, 7.5, UsageRatio{Current: 2.5, Limit: 10}.Remaining(), 1e-9)
	assert.Equal(t, 0.0, UsageRatio{Current: 12, Limit: 10}.Remaining())
}

func TestGetActionByName(t *testing.T) {
	a := GetActionByName(ActionRefresh)
	require.NotNil(t, a)
	assert.Equal(t, "Refresh usage now", a.Description)
	assert.Nil(t, GetActionByName("archive"))
}
