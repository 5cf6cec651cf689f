//go:build !windows

package process

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/muesli/cancelreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardInput_CopiesUntilEOF(t *testing.T) {
	var out bytes.Buffer
	detached := false

	forwardInput(strings.NewReader("q\r"), &out, func() { detached = true })

	assert.Equal(t, "q\r", out.String())
	assert.False(t, detached)
}

func TestForwardInput_CtrlQDetaches(t *testing.T) {
	var out bytes.Buffer
	detached := false

	forwardInput(strings.NewReader("ab\x11cd"), &out, func() { detached = true })

	assert.Equal(t, "ab", out.String(), "bytes after ctrl+q stay with the caller")
	assert.True(t, detached)
}

func TestForwardInput_StopsWhenReaderCancelled(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pr.Close()
	defer pw.Close()

	in, err := cancelreader.NewReader(pr)
	require.NoError(t, err)
	defer in.Close()

	var out bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		forwardInput(in, &out, func() {})
	}()

	require.True(t, in.Cancel())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("input forwarding kept reading after cancel")
	}

	// A keystroke typed after the live view ended is left for the next reader
	_, err = pw.Write([]byte("x"))
	require.NoError(t, err)
	buf := make([]byte, 1)
	n, err := pr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "x", string(buf[:n]))
	assert.Empty(t, out.String())
}
