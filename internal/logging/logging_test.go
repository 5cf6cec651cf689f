package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogs(t *testing.T, dir string, n int) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		p := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mt := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mt, mt))
	}
}

func TestInitialize_DiscardWhenNotDebug(t *testing.T) {
	path, err := Initialize(Options{MaxFiles: DefaultMaxLogFiles})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.False(t, Logger.Enabled(t.Context(), 0))
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(Options{File: logFile})
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("poll cycle finished", "cycle_id", "abc")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cycle_id":"abc"`)
	assert.Contains(t, string(data), `"pid":`)
}

func TestInitialize_RotatesLogDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvLogDir, dir)
	writeLogs(t, dir, 5)

	var announce bytes.Buffer
	path, err := Initialize(Options{Debug: true, MaxFiles: 3, Announce: &announce})
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Contains(t, announce.String(), path)

	files, err := Files(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, path, files[0].Path, "the new log is the newest")
	assert.Equal(t, filepath.Join(dir, "4.log"), files[1].Path)
	assert.Equal(t, filepath.Join(dir, "3.log"), files[2].Path)
}

func TestFiles_NewestFirstSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeLogs(t, dir, 3)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.log"), 0755))

	files, err := Files(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f.Path))
	}
	assert.Equal(t, []string{"2.log", "1.log", "0.log"}, names)
}

func TestRotate(t *testing.T) {
	dir := t.TempDir()
	writeLogs(t, dir, 5)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"3.log", "4.log", "keep.txt"}, names)

	require.NoError(t, rotate(dir, 10), "under the limit nothing is removed")
	files, err := Files(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvLogDir, "/tmp/usagebar-logs")

	dir, err := Dir()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/usagebar-logs", dir)
}
