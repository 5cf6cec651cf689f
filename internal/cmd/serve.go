package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"usagebar/internal/config"
	"usagebar/internal/logging"
	"usagebar/internal/server"
	"usagebar/internal/ui"
)

// ServeCmd serves the status UI over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file used for public key auth (default ~/.ssh/authorized_keys)"`
	Host           string `help:"Address to listen on" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	authorizedKeys := s.AuthorizedKeys
	if authorizedKeys == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		authorizedKeys = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	sink := ui.NewProgramSink()
	poller := cli.Container.NewPoller(sink, PollerOptions{})

	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: config.ExpandPath(authorizedKeys),
		Host:               s.Host,
		Port:               s.Port,
		SSHDir:             config.GetSSHDir(),
	}, poller, sink)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("SSH server listening on %s\n", srv.Addr())
	logging.Logger.Info("Serving usage status over SSH", "address", srv.Addr(), "authorized_keys", authorizedKeys)

	return runHeadless(ctx, cli.Container, poller, srv.Run)
}
