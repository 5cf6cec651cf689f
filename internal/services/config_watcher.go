package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"usagebar/internal/config"
	"usagebar/internal/domain"
	"usagebar/internal/logging"
)

const defaultReloadDebounce = 200 * time.Millisecond

// Reconfigurer accepts a new configuration generation
type Reconfigurer interface {
	Reconfigure(cfg config.PollerConfig) error
}

// ConfigWatcher reloads the settings file when it changes and hands the
// resolved configuration to the poller
type ConfigWatcher struct {
	debounce time.Duration
	path     string
	target   Reconfigurer
	watcher  *fsnotify.Watcher

	mu      sync.Mutex
	doneCh  chan struct{}
	running bool
	stopCh  chan struct{}
}

// NewConfigWatcher creates a watcher for the settings file at path
func NewConfigWatcher(path string, target Reconfigurer) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings watcher: %w", err)
	}

	return &ConfigWatcher{
		debounce: defaultReloadDebounce,
		path:     filepath.Clean(path),
		target:   target,
		watcher:  watcher,
	}, nil
}

// Start watches the settings directory. Settings are saved through a rename,
// so the directory is watched rather than the file.
func (w *ConfigWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	go w.run(ctx)

	logging.Logger.Info("Watching settings file", "path", w.path)
	return nil
}

// Stop ends the watch loop and releases the watcher
func (w *ConfigWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.Logger.Warn("Failed to close settings watcher", "error", err)
	}
}

func (w *ConfigWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var (
		fire  <-chan time.Time
		timer *time.Timer
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			logging.Logger.Debug("Settings file event", "op", event.Op.String())
			// Editors write in bursts; reload once things settle
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("Settings watcher error", "error", err)
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *ConfigWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// reload applies the file. An invalid file keeps the running configuration.
func (w *ConfigWatcher) reload() {
	settings, err := config.LoadSettingsFrom(w.path)
	if err != nil {
		logging.Logger.Warn("Ignoring invalid settings", "path", w.path, "error", err)
		return
	}

	cfg := config.Resolve(settings)
	if err := w.target.Reconfigure(cfg); err != nil {
		if errors.Is(err, domain.ErrPollerDisposed) {
			logging.Logger.Debug("Settings changed after poller disposed")
			return
		}
		logging.Logger.Error("Failed to apply settings", "error", err)
		return
	}

	logging.Logger.Info("Settings reloaded", "path", w.path)
}
