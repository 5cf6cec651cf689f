package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"usagebar/internal/cmd"
	"usagebar/internal/config"
	"usagebar/internal/version"
)

func main() {
	// Load settings from ~/.usagebar/settings.json (or settings.yaml)
	settingsPath := config.GetSettingsPath()
	settings, err := config.LoadSettingsFrom(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settingsPath, settings)
	ctx := kong.Parse(&cli,
		kong.Name("usagebar"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err = ctx.Run()
	if closeErr := cli.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
