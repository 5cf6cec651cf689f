package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"usagebar/internal/logging"
)

// DetailsCmd runs the live usage view in the current terminal
type DetailsCmd struct {
	Command string `help:"Live view command (defaults to the live_command setting)"`
}

// Run executes the details command
func (d *DetailsCmd) Run(cli *CLI) error {
	command := d.Command
	if command == "" {
		command = cli.Container.Config.LiveCommand
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Opening live view", "command", command)
	fmt.Fprintln(os.Stderr, "Press Ctrl+Q to leave the live view")

	if err := cli.Container.LiveRunner.RunLive(ctx, command); err != nil {
		return fmt.Errorf("live view: %w", err)
	}
	return nil
}
