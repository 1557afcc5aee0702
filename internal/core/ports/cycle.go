package ports

import (
	"context"

	"slsbundler.dev/cli/internal/core/domain"
)

// CycleStore is the single-slot register that holds the open build cycle
type CycleStore interface {
	// Load returns the held cycle; ok is false when the slot is empty
	Load(ctx context.Context) (cycle domain.Cycle, ok bool, err error)

	// Save fills the slot. It fails with domain.ErrCycleInProgress when a
	// cycle is already held.
	Save(ctx context.Context, cycle domain.Cycle) error

	// Clear empties the slot; clearing an empty slot is not an error
	Clear(ctx context.Context) error

	// Location describes where the slot is kept, for error messages
	Location() string
}
