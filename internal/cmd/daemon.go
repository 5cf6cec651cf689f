package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kardianos/service"
	"golang.org/x/sync/errgroup"

	"usagebar/internal/logging"
	"usagebar/internal/services"
)

// DaemonCmd manages the background poller that feeds `usagebar status`
type DaemonCmd struct {
	Install    DaemonInstallCmd   `cmd:"install" help:"Install the poller as a user service"`
	Uninstall  DaemonUninstallCmd `cmd:"uninstall" help:"Stop and remove the service"`
	Start      DaemonStartCmd     `cmd:"start" help:"Start the service"`
	Stop       DaemonStopCmd      `cmd:"stop" help:"Stop the service"`
	Status     DaemonStatusCmd    `cmd:"status" help:"Show the service status"`
	Foreground DaemonRunCmd       `cmd:"run" help:"Run the poller in the foreground (used by the service manager)"`
}

// daemonProgram implements service.Interface
type daemonProgram struct {
	cancel    context.CancelFunc
	container *Container
	errCh     chan error
}

func (d *daemonProgram) Start(service.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.errCh = make(chan error, 1)

	go func() {
		err := d.run(ctx)
		if err != nil && ctx.Err() == nil {
			// Let the service manager restart us
			logging.Logger.Error("Daemon failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		d.errCh <- err
	}()
	return nil
}

func (d *daemonProgram) Stop(service.Service) error {
	logging.Logger.Info("Stopping daemon")
	d.cancel()
	return <-d.errCh
}

func (d *daemonProgram) run(ctx context.Context) error {
	// The recorder is both the sink (hide) and an observer (rendered cycles)
	recorder := services.NewStatusRecorder(d.container.StatusStore)
	poller := d.container.NewPoller(recorder, PollerOptions{RecordStatus: true})

	logging.Logger.Info("Daemon started", "status_file", d.container.StatusStore.Path())
	return runHeadless(ctx, d.container, poller)
}

// runHeadless runs poller and the settings watcher until ctx is done,
// together with any extra tasks. The first failing task stops everything.
func runHeadless(ctx context.Context, c *Container, poller *services.Poller, tasks ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := poller.Start(ctx); err != nil {
			return fmt.Errorf("failed to start poller: %w", err)
		}
		<-ctx.Done()
		poller.Dispose()
		return nil
	})

	g.Go(func() error {
		watcher, err := c.NewConfigWatcher(poller)
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		watcher.Stop()
		return nil
	})

	for _, task := range tasks {
		g.Go(func() error { return task(ctx) })
	}

	return g.Wait()
}

func newService(prog service.Interface) (service.Service, error) {
	cfg := &service.Config{
		Name:        "usagebar",
		DisplayName: "usagebar",
		Description: "Polls Claude usage and records the status for the tmux status bar",
		Arguments:   []string{"daemon", "run"},
		Option:      service.KeyValue{"UserService": true},
	}
	if home := os.Getenv("USAGEBAR_HOME"); home != "" {
		cfg.EnvVars = map[string]string{"USAGEBAR_HOME": home}
	}

	s, err := service.New(prog, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return s, nil
}

// DaemonRunCmd runs the poller until stopped
type DaemonRunCmd struct{}

// Run executes the daemon in the foreground or under the service manager
func (r *DaemonRunCmd) Run(cli *CLI) error {
	s, err := newService(&daemonProgram{container: cli.Container})
	if err != nil {
		return err
	}

	logging.Logger.Info("Running daemon", "interactive", service.Interactive())
	return s.Run()
}

// DaemonInstallCmd installs the service
type DaemonInstallCmd struct {
	NoStart bool `help:"Install without starting the service"`
}

// Run executes the install command
func (c *DaemonInstallCmd) Run(cli *CLI) error {
	s, err := newService(&daemonProgram{container: cli.Container})
	if err != nil {
		return err
	}
	if err := s.Install(); err != nil {
		return fmt.Errorf("failed to install service: %w", err)
	}
	fmt.Println("✓ Service installed")

	if c.NoStart {
		return nil
	}
	if err := s.Start(); err != nil {
		return fmt.Errorf("service installed but failed to start: %w", err)
	}
	fmt.Println("✓ Service started")
	return nil
}

// DaemonUninstallCmd removes the service
type DaemonUninstallCmd struct{}

// Run executes the uninstall command
func (c *DaemonUninstallCmd) Run(cli *CLI) error {
	s, err := newService(&daemonProgram{container: cli.Container})
	if err != nil {
		return err
	}

	if err := s.Stop(); err != nil {
		logging.Logger.Debug("Stop before uninstall failed", "error", err)
	}
	if err := s.Uninstall(); err != nil {
		return fmt.Errorf("failed to uninstall service: %w", err)
	}
	fmt.Println("✓ Service uninstalled")
	return nil
}

// DaemonStartCmd starts the installed service
type DaemonStartCmd struct{}

// Run executes the start command
func (c *DaemonStartCmd) Run(cli *CLI) error {
	s, err := newService(&daemonProgram{container: cli.Container})
	if err != nil {
		return err
	}
	if err := s.Start(); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	fmt.Println("✓ Service started")
	return nil
}

// DaemonStopCmd stops the running service
type DaemonStopCmd struct{}

// Run executes the stop command
func (c *DaemonStopCmd) Run(cli *CLI) error {
	s, err := newService(&daemonProgram{container: cli.Container})
	if err != nil {
		return err
	}
	if err := s.Stop(); err != nil {
		return fmt.Errorf("failed to stop service: %w", err)
	}
	fmt.Println("✓ Service stopped")
	return nil
}

// DaemonStatusCmd reports whether the service runs
type DaemonStatusCmd struct{}

// Run executes the status command
func (c *DaemonStatusCmd) Run(cli *CLI) error {
	s, err := newService(&daemonProgram{container: cli.Container})
	if err != nil {
		return err
	}

	status, err := s.Status()
	switch {
	case err != nil:
		fmt.Printf("Service status: not installed or error (%v)\n", err)
	case status == service.StatusRunning:
		fmt.Println("Service status: running")
	case status == service.StatusStopped:
		fmt.Println("Service status: stopped")
	default:
		fmt.Println("Service status: unknown")
	}
	return nil
}
