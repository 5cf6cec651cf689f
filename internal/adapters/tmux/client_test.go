package tmux

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsideTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	assert.False(t, InsideTmux())

	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	assert.True(t, InsideTmux())
}

func TestSourceFile_MissingBinary(t *testing.T) {
	c := &Client{binary: filepath.Join(t.TempDir(), "no-tmux")}

	err := c.SourceFile("/nonexistent/.tmux.conf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmux source-file /nonexistent/.tmux.conf")
}
