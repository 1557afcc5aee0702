package state

import (
	"context"
	"sync"

	"slsbundler.dev/cli/internal/core/domain"
	"slsbundler.dev/cli/internal/core/ports"
)

// MemoryStore holds the open cycle in process memory
type MemoryStore struct {
	mu    sync.Mutex
	cycle *domain.Cycle
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (domain.Cycle, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycle == nil {
		return domain.Cycle{}, false, nil
	}
	return *s.cycle, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, cycle domain.Cycle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycle != nil {
		return domain.ErrCycleInProgress
	}
	s.cycle = &cycle
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycle = nil
	return nil
}

func (s *MemoryStore) Location() string { return "process memory" }

var _ ports.CycleStore = (*MemoryStore)(nil)
