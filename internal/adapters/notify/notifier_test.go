package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_TerminalBell(t *testing.T) {
	var buf bytes.Buffer
	n := &Notifier{bell: &buf}

	require.NoError(t, n.terminalBell())

	assert.Equal(t, "\a", buf.String())
}
