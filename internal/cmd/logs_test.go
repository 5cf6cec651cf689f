package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectLogEntries(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().UTC()
	line := func(at time.Time, level, msg, cycle string) string {
		return `{"time":"` + at.Format(time.RFC3339Nano) + `","level":"` + level + `","msg":"` + msg + `","cycle_id":"` + cycle + `"}`
	}

	content := strings.Join([]string{
		line(now.Add(-2*time.Hour), "INFO", "too old", "a"),
		line(now.Add(-10*time.Minute), "DEBUG", "cycle started", "a"),
		"not json",
		line(now.Add(-5*time.Minute), "WARN", "usage command failed", "a"),
		line(now.Add(-time.Minute), "INFO", "cycle done", "b"),
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.log"), []byte(content), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(line(now, "ERROR", "ignored", "a")), 0644))

	entries, err := collectLogEntries(dir, now.Add(-time.Hour), "", "DEBUG")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "cycle done", entries[0].Message, "newest first")
	assert.Equal(t, "one.log", entries[0].Source)

	entries, err = collectLogEntries(dir, now.Add(-time.Hour), "a", "INFO")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "usage command failed", entries[0].Message)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
