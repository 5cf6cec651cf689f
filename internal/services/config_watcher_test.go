package services

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"usagebar/internal/config"
)

type recordingReconfigurer struct {
	mu      sync.Mutex
	configs []config.PollerConfig
}

func (r *recordingReconfigurer) Reconfigure(cfg config.PollerConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, cfg)
	return nil
}

func (r *recordingReconfigurer) Configs() []config.PollerConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]config.PollerConfig(nil), r.configs...)
}

func startWatcher(t *testing.T, path string, target Reconfigurer) *ConfigWatcher {
	t.Helper()
	w, err := NewConfigWatcher(path, target)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	require.NoError(t, w.Start(context.Background()))
	return w
}

func TestConfigWatcher_ReloadsOnSave(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "settings.json")
	target := &recordingReconfigurer{}
	w := startWatcher(t, path, target)
	defer w.Stop()

	interval := 7
	currency := "jpy"
	require.NoError(t, config.SaveSettingsTo(path, &config.Settings{IntervalSeconds: &interval, Currency: currency}))

	require.Eventually(t, func() bool { return len(target.Configs()) > 0 }, 2*time.Second, 10*time.Millisecond)
	got := target.Configs()[len(target.Configs())-1]
	assert.Equal(t, 7*time.Second, got.Interval())
	assert.Equal(t, config.CurrencyJPY, got.Display.Currency)
}

func TestConfigWatcher_InvalidFileKeepsConfig(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "settings.json")
	target := &recordingReconfigurer{}
	w := startWatcher(t, path, target)
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`{"interval_seconds": -1}`), 0644))

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, target.Configs())
}

func TestConfigWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	target := &recordingReconfigurer{}
	w := startWatcher(t, filepath.Join(dir, "settings.json"), target)
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "status.json"), []byte(`{}`), 0644))

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, target.Configs())
}

func TestConfigWatcher_RemovedFileRestoresDefaults(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "settings.json")
	interval := 30
	require.NoError(t, config.SaveSettingsTo(path, &config.Settings{IntervalSeconds: &interval}))

	target := &recordingReconfigurer{}
	w := startWatcher(t, path, target)
	defer w.Stop()

	require.NoError(t, os.Remove(path))

	require.Eventually(t, func() bool { return len(target.Configs()) > 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, config.DefaultPollerConfig(), target.Configs()[len(target.Configs())-1])
}

func TestConfigWatcher_StopTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := startWatcher(t, filepath.Join(t.TempDir(), "settings.json"), &recordingReconfigurer{})

	assert.NotPanics(t, func() {
		w.Stop()
		w.Stop()
	})
}
