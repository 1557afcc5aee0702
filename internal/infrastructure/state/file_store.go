package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"slsbundler.dev/cli/internal/core/domain"
	"slsbundler.dev/cli/internal/core/ports"
)

// StateDir is the directory, inside the service directory, holding plugin state
const StateDir = ".slsbundler"

// FileStore persists the open cycle as JSON so that build and clean can run
// in separate processes
type FileStore struct {
	path string
}

// NewFileStore creates a store under serviceDir/.slsbundler
func NewFileStore(serviceDir string) *FileStore {
	return NewFileStoreWithPath(filepath.Join(serviceDir, StateDir, "cycle.json"))
}

// NewFileStoreWithPath creates a store at a specific file path
func NewFileStoreWithPath(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the state file location
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(ctx context.Context) (domain.Cycle, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Cycle{}, false, nil
		}
		return domain.Cycle{}, false, fmt.Errorf("failed to read cycle state: %w", err)
	}

	var cycle domain.Cycle
	if err := json.Unmarshal(data, &cycle); err != nil {
		return domain.Cycle{}, false, fmt.Errorf("failed to parse cycle state %s: %w", s.path, err)
	}
	return cycle, true, nil
}

func (s *FileStore) Save(ctx context.Context, cycle domain.Cycle) error {
	if _, held, err := s.Load(ctx); err != nil {
		return err
	} else if held {
		return domain.ErrCycleInProgress
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(cycle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cycle state: %w", err)
	}

	// Write then rename so a crash never leaves a half-written slot
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write cycle state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write cycle state: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cycle state: %w", err)
	}
	return nil
}

func (s *FileStore) Location() string { return s.path }

var _ ports.CycleStore = (*FileStore)(nil)
