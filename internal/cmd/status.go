package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"usagebar/internal/domain"
	"usagebar/internal/logging"
	"usagebar/internal/services"
	"usagebar/internal/theme"
)

// StatusCmd prints the status recorded by the daemon
type StatusCmd struct {
	Format string        `help:"Output format: auto (plain on a terminal, tmux otherwise), tmux, plain or json" enum:"auto,tmux,plain,json" default:"auto"`
	MaxAge time.Duration `help:"Age after which the recorded status is marked stale (0 disables)" default:"1m"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	reader := services.NewStatusReader(cli.Container.StatusStore, s.MaxAge)

	view, err := reader.Current()
	if err != nil {
		// Never fail the status bar; the cause goes to the log
		logging.Logger.Error("Failed to read status file", "error", err)
		view = domain.StatusView{Color: domain.ColorError, Text: theme.IconError + " usagebar"}
	}

	format := s.Format
	if format == "auto" {
		format = "tmux"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "plain"
		}
	}

	return writeStatus(os.Stdout, view, format)
}

func writeStatus(w io.Writer, view domain.StatusView, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(map[string]string{
			"color":   view.Color.String(),
			"text":    view.Text,
			"tooltip": view.Tooltip,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "tmux":
		_, err := fmt.Fprint(w, tmuxStatus(view))
		return err
	}

	_, err := fmt.Fprintln(w, view.Text)
	return err
}

// tmuxStatus renders view with tmux style markup. '#' is doubled so the text
// cannot inject formats.
func tmuxStatus(view domain.StatusView) string {
	if view.Text == "" {
		return ""
	}

	text := strings.ReplaceAll(view.Text, "#", "##")
	if view.Color == domain.ColorNeutral {
		return text
	}
	return fmt.Sprintf("#[bg=%s,fg=colour255] %s #[default]", theme.TmuxColor(view.Color), text)
}
