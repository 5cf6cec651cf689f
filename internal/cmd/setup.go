package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"usagebar/internal/ports"
)

const (
	tmuxHeader = "# usagebar status bar configuration"
	pathMarker = "# Added by usagebar setup"
)

// SetupCmd configures tmux automatically
type SetupCmd struct {
	NoPath     bool                   `help:"Do not add the usagebar directory to PATH in shell rc files"`
	TmuxClient ports.TmuxConfigurator `kong:"-"`
}

// Run executes the setup command
func (s *SetupCmd) Run(cli *CLI) error {
	if s.TmuxClient == nil {
		s.TmuxClient = cli.Container.TmuxClient
	}

	if err := s.verifyDependencies(cli.Container.Config.Command); err != nil {
		return err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	if !s.NoPath {
		binary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to get usagebar binary path: %w", err)
		}
		if err := s.setupPath(homeDir, filepath.Dir(binary)); err != nil {
			return err
		}
	}

	if err := s.setupTmux(homeDir); err != nil {
		return err
	}

	fmt.Println("\n✓ Setup complete!")
	fmt.Println("Start the background poller so the status bar has data:")
	fmt.Println("  usagebar daemon install && usagebar daemon start")

	return nil
}

// setupPath adds dir to PATH in shell rc files (idempotent)
func (s *SetupCmd) setupPath(homeDir, dir string) error {
	var rcFiles []string
	for _, name := range []string{".zshrc", ".bashrc"} {
		if _, err := os.Stat(filepath.Join(homeDir, name)); err == nil {
			rcFiles = append(rcFiles, filepath.Join(homeDir, name))
		}
	}
	if len(rcFiles) == 0 {
		rcFiles = append(rcFiles, filepath.Join(homeDir, ".bashrc"))
	}

	pathLine := fmt.Sprintf(`export PATH="%s:$PATH" %s`, dir, pathMarker)

	for _, rcFile := range rcFiles {
		content, err := os.ReadFile(rcFile)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read %s: %w", rcFile, err)
		}

		if strings.Contains(string(content), pathMarker) {
			fmt.Printf("✓ PATH already configured in %s\n", filepath.Base(rcFile))
			continue
		}

		if err := appendLines(rcFile, "\n"+pathLine+"\n"); err != nil {
			return err
		}
		fmt.Printf("✓ Added usagebar to PATH in %s\n", filepath.Base(rcFile))
	}

	return nil
}

// setupTmux adds the missing status bar settings to ~/.tmux.conf (idempotent)
func (s *SetupCmd) setupTmux(homeDir string) error {
	tmuxConfPath := filepath.Join(homeDir, ".tmux.conf")

	existing, err := os.ReadFile(tmuxConfPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read .tmux.conf: %w", err)
	}
	existingStr := string(existing)

	required := []struct {
		check   string
		setting string
	}{
		{"status-right-length", "set -g status-right-length 120\n"},
		{"usagebar status", "set -g status-right \"#(usagebar status) | %H:%M\"\n"},
		{"status-interval", "set -g status-interval 5\n"},
	}

	var missing []string
	for _, req := range required {
		if !strings.Contains(existingStr, req.check) {
			missing = append(missing, req.setting)
		}
	}

	if len(missing) == 0 {
		fmt.Println("✓ Tmux configuration is up to date in ~/.tmux.conf")
		return nil
	}

	var b strings.Builder
	if !strings.Contains(existingStr, tmuxHeader) {
		b.WriteString("\n" + tmuxHeader + "\n")
	}
	for _, setting := range missing {
		b.WriteString(setting)
	}
	if err := appendLines(tmuxConfPath, b.String()); err != nil {
		return err
	}

	fmt.Printf("✓ Added %d missing setting(s) to ~/.tmux.conf\n", len(missing))

	if err := s.TmuxClient.SourceFile(tmuxConfPath); err != nil {
		// tmux might not be running
		fmt.Println("  Note: tmux is not currently running. Configuration will be loaded when you start tmux.")
	} else {
		fmt.Println("✓ Reloaded tmux configuration")
	}

	return nil
}

func appendLines(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("failed to write to %s: %w", filepath.Base(path), err)
	}
	return nil
}

type dependency struct {
	name        string
	command     string
	installInfo string
}

// verifyDependencies checks that tmux and the usage command's program exist
func (s *SetupCmd) verifyDependencies(usageCommand string) error {
	dependencies := []dependency{
		{
			name:        "tmux",
			command:     "tmux",
			installInfo: "Install with: apt install tmux (Ubuntu/Debian), brew install tmux (macOS), or pacman -S tmux (Arch)",
		},
	}
	if fields := strings.Fields(usageCommand); len(fields) > 0 {
		dependencies = append(dependencies, dependency{
			name:        "usage command (" + fields[0] + ")",
			command:     fields[0],
			installInfo: "Install Node.js for npx, or set \"command\" in the settings file",
		})
	}

	var missing []string
	fmt.Println("Checking dependencies...")

	for _, dep := range dependencies {
		if _, err := exec.LookPath(dep.command); err != nil {
			missing = append(missing, fmt.Sprintf("  ✗ %s not found\n    %s", dep.name, dep.installInfo))
			fmt.Printf("✗ %s not found\n", dep.name)
		} else {
			fmt.Printf("✓ %s found\n", dep.name)
		}
	}

	if len(missing) > 0 {
		fmt.Println()
		return fmt.Errorf("missing required dependencies:\n%s", strings.Join(missing, "\n"))
	}

	fmt.Println()
	return nil
}
