package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"usagebar/internal/logging"
	"usagebar/internal/ui"
)

// WatchCmd starts the TUI
type WatchCmd struct {
	Dev     bool `help:"Enable development mode (shows version info in dialogs)"`
	NoWatch bool `help:"Do not reload settings when the settings file changes"`
}

// Run executes the TUI
func (w *WatchCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting usagebar TUI")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := ui.NewProgramSink()
	poller := cli.Container.NewPoller(sink, PollerOptions{})

	model := ui.NewModel(poller, sink, ui.ModelOptions{
		DevMode:      w.Dev,
		Live:         cli.Container.LiveRunner,
		SettingsPath: cli.Container.SettingsPath,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	unsubscribe := sink.Subscribe(p.Send)
	defer unsubscribe()

	if err := poller.Start(ctx); err != nil {
		return fmt.Errorf("failed to start poller: %w", err)
	}
	defer poller.Dispose()

	if !w.NoWatch {
		watcher, err := cli.Container.NewConfigWatcher(poller)
		if err != nil {
			logging.Logger.Warn("Settings reload disabled", "error", err)
		} else if err := watcher.Start(ctx); err != nil {
			logging.Logger.Warn("Settings reload disabled", "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
