package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/services"
)

// ParseCmd parses usage output once, from stdin or by running the command
type ParseCmd struct {
	Command string `help:"Command to run with --exec (defaults to the command setting)"`
	Exec    bool   `help:"Run the usage command instead of reading stdin" short:"x"`
	Format  string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

type parseResult struct {
	Error  string              `json:"error,omitempty"`
	Input  string              `json:"input"`
	Record *domain.UsageRecord `json:"record"`
	Status struct {
		Color   string `json:"color"`
		Text    string `json:"text"`
		Tooltip string `json:"tooltip"`
	} `json:"status"`
}

// Run executes the parse command
func (p *ParseCmd) Run(cli *CLI) error {
	cfg := cli.Container.Config
	if p.Command != "" {
		cfg.Command = p.Command
	}

	var (
		input  string
		runErr error
	)
	if p.Exec {
		input, runErr = cli.Container.Runner.Run(context.Background(), cfg.Command, cfg.Timeout)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(data)
	}

	var result parseResult
	result.Input = input

	var view domain.StatusView
	if runErr != nil {
		logging.Logger.Warn("Usage command failed", "command", cfg.Command, "error", runErr)
		result.Error = runErr.Error()
		view = services.PresentError(runErr)
	} else {
		result.Record = cli.Container.Parser.Parse(input)
		view = services.Present(result.Record, cfg.Display)
	}
	result.Status.Color = view.Color.String()
	result.Status.Text = view.Text
	result.Status.Tooltip = view.Tooltip

	if p.Format == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s  [%s]\n\n%s\n", view.Text, view.Color, view.Tooltip)
	return nil
}
