package statusfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"usagebar/internal/domain"
	"usagebar/internal/ports"
)

// Store keeps the last rendered status in a JSON file guarded by an
// advisory lock, so `usagebar status` never reads a half-written file
type Store struct {
	path string
}

var _ ports.StatusStore = (*Store)(nil)

// NewStore creates a store at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the status file location
func (s *Store) Path() string {
	return s.path
}

// Read returns the stored snapshot, or domain.ErrStatusNotFound when the
// daemon has not written one yet
func (s *Store) Read() (*domain.StatusSnapshot, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrStatusNotFound
		}
		return nil, fmt.Errorf("failed to open status file: %w", err)
	}
	defer file.Close()

	if err := lockShared(file); err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read status file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.ErrStatusNotFound
	}

	var snap domain.StatusSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status: %w", err)
	}
	return &snap, nil
}

// Write replaces the stored snapshot
func (s *Store) Write(snap domain.StatusSnapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create status directory: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open status file: %w", err)
	}
	defer file.Close()

	if err := lockExclusive(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}

	return file.Sync()
}

// Remove deletes the status file; a missing file is not an error
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove status file: %w", err)
	}
	return nil
}
