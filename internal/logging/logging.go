package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Environment shared with child processes so the daemon and the live view
// write to the same log as the command that started them
const (
	EnvDebug     = "USAGEBAR_DEBUG"
	EnvDebugFile = "USAGEBAR_DEBUG_FILE"
	EnvLogDir    = "USAGEBAR_LOG_DIR"
	EnvMaxFiles  = "USAGEBAR_MAX_LOG_FILES"
)

// DefaultMaxLogFiles is the rotation limit used when nothing else is configured
const DefaultMaxLogFiles = 1000

const fileExt = ".log"

// Logger is the process-wide logger. It discards everything until Initialize
// is called with debug enabled.
var Logger = slog.New(slog.DiscardHandler)

// Options selects where debug logs go
type Options struct {
	Debug    bool
	File     string    // fixed file, never rotated
	MaxFiles int       // files kept in Dir(); 0 keeps all
	Announce io.Writer // told where the log lives; nil stays quiet
}

// Initialize replaces Logger. It returns the path of the log file, or ""
// when logs are discarded.
func Initialize(opts Options) (string, error) {
	if !opts.Debug && opts.File == "" {
		Logger = slog.New(slog.DiscardHandler)
		return "", nil
	}

	path := opts.File
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		if opts.MaxFiles > 0 {
			// One slot is left for the file opened below
			if err := rotate(dir, opts.MaxFiles-1); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		path = filepath.Join(dir, uuid.NewString()+fileExt)
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("pid", os.Getpid())
	Logger.Info("Debug logging initialized", "log_file", path)

	if opts.Announce != nil {
		fmt.Fprintf(opts.Announce, "Debug mode enabled. Logs: %s\n", path)
	}
	return path, nil
}

// File is one log file in the log directory
type File struct {
	Path    string
	ModTime time.Time
}

// Files lists the log files in dir, newest first
func Files(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, File{Path: filepath.Join(dir, entry.Name()), ModTime: info.ModTime()})
	}

	slices.SortFunc(files, func(a, b File) int {
		return b.ModTime.Compare(a.ModTime)
	})
	return files, nil
}

// rotate deletes all but the keep newest log files in dir
func rotate(dir string, keep int) error {
	files, err := Files(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}
	if len(files) <= keep {
		return nil
	}

	for _, f := range files[keep:] {
		if err := os.Remove(f.Path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.Path, err)
		}
	}
	return nil
}

// Dir returns the log directory: $USAGEBAR_LOG_DIR when set, otherwise the
// platform's per-user state location
func Dir() (string, error) {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "usagebar"), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, "usagebar", "logs"), nil
	}

	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, "usagebar"), nil
}
