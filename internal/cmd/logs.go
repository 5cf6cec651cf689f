package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"usagebar/internal/logging"
)

// LogsCmd displays entries from the debug log files
type LogsCmd struct {
	Cycle  string `arg:"" optional:"" help:"Filter by poll cycle id"`
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
	Level  string `help:"Minimum level to show" default:"debug" enum:"debug,info,warn,error"`
	Since  string `help:"Show logs since duration (e.g., '1h', '30m')" default:"1h"`
}

// logEntry represents a single slog JSON line
type logEntry struct {
	CycleID   string    `json:"cycle_id,omitempty"`
	Error     string    `json:"error,omitempty"`
	Level     string    `json:"level"`
	Message   string    `json:"msg"`
	Source    string    `json:"source"` // filename
	Timestamp time.Time `json:"time"`
}

var levelRank = map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3}

// Run executes the logs command
func (l *LogsCmd) Run(cli *CLI) error {
	logDir, err := logging.Dir()
	if err != nil {
		return fmt.Errorf("failed to get log directory: %w", err)
	}

	sinceDuration, err := time.ParseDuration(l.Since)
	if err != nil {
		return fmt.Errorf("invalid --since duration: %w", err)
	}

	entries, err := collectLogEntries(logDir, time.Now().Add(-sinceDuration), l.Cycle, strings.ToUpper(l.Level))
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No logs found. Run usagebar with --debug to record them.")
			return nil
		}
		return err
	}

	if l.Format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}
	return outputLogTable(entries)
}

// collectLogEntries reads every .log file modified since sinceTime and returns
// matching entries, newest first
func collectLogEntries(logDir string, sinceTime time.Time, cycle, minLevel string) ([]logEntry, error) {
	files, err := logging.Files(logDir)
	if err != nil {
		return nil, err
	}

	var all []logEntry
	for _, f := range files {
		// Files untouched since the cutoff cannot hold newer lines
		if f.ModTime.Before(sinceTime) {
			continue
		}

		name := filepath.Base(f.Path)
		fileEntries, err := parseLogFile(f.Path)
		if err != nil {
			logging.Logger.Warn("Failed to parse log file", "file", name, "error", err)
			continue
		}

		for _, e := range fileEntries {
			if e.Timestamp.Before(sinceTime) {
				continue
			}
			if cycle != "" && e.CycleID != cycle {
				continue
			}
			if levelRank[e.Level] < levelRank[minLevel] {
				continue
			}
			e.Source = name
			all = append(all, e)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})
	return all, nil
}

// parseLogFile reads a log file, skipping malformed lines
func parseLogFile(path string) ([]logEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []logEntry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var e logEntry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}

	return entries, scanner.Err()
}

func outputLogTable(entries []logEntry) error {
	if len(entries) == 0 {
		fmt.Println("No logs found for the specified criteria.")
		return nil
	}

	fmt.Printf("%-20s %-7s %-10s %s\n", "TIMESTAMP", "LEVEL", "CYCLE", "MESSAGE")
	fmt.Println(strings.Repeat("-", 90))

	for _, e := range entries {
		message := e.Message
		if e.Error != "" {
			message += ": " + e.Error
		}
		fmt.Printf("%-20s %-7s %-10s %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Level,
			truncate(e.CycleID, 10),
			truncate(message, 60))
	}

	fmt.Printf("\nTotal: %d log entries\n", len(entries))
	return nil
}

// truncate truncates a string to maxLen, adding "..." if needed
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
