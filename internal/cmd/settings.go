package cmd

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"

	"usagebar/internal/config"
	"usagebar/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Edit SettingsEditCmd `cmd:"edit" help:"Edit settings in a form"`
	Open SettingsOpenCmd `cmd:"open" help:"Open the settings file in an editor"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := cli.Container.SettingsPath
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Keys and their defaults:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range slices.Sorted(maps.Keys(example)) {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file (JSON, or settings.yaml for YAML) to configure usagebar.")
	fmt.Println("A running usagebar picks up changes without a restart.")

	return nil
}

// SettingsEditCmd opens the settings form outside the TUI
type SettingsEditCmd struct{}

// settingsEditor quits the program once the form is done
type settingsEditor struct {
	form *ui.SettingsForm
}

func (e settingsEditor) Init() tea.Cmd {
	return e.form.Init()
}

func (e settingsEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := e.form.Update(msg)
	if e.form.Completed {
		return e, tea.Quit
	}
	return e, cmd
}

func (e settingsEditor) View() string {
	if e.form.Completed {
		return ""
	}
	return e.form.View()
}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	form := ui.NewSettingsForm(cli.Container.SettingsPath)
	if _, err := tea.NewProgram(settingsEditor{form: form}).Run(); err != nil {
		return fmt.Errorf("error running settings form: %w", err)
	}

	result := form.Result()
	switch {
	case result.Error != nil:
		return result.Error
	case result.Cancelled:
		fmt.Println("Settings unchanged.")
	default:
		fmt.Printf("✓ Settings saved to %s\n", cli.Container.SettingsPath)
	}
	return nil
}

// SettingsOpenCmd opens the settings file in an external editor
type SettingsOpenCmd struct {
	Editor string `help:"Editor to use (overrides $USAGEBAR_EDITOR, $VISUAL, $EDITOR)"`
}

// Run executes the open command
func (s *SettingsOpenCmd) Run(cli *CLI) error {
	path := cli.Container.SettingsPath
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Start from an empty file so the editor has something to open
		if err := config.SaveSettingsTo(path, &config.Settings{}); err != nil {
			return err
		}
	}

	return cli.Container.Editor.Open(path, s.Editor)
}
