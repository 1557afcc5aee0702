package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cycle is the state held between a successful build and its clean
type Cycle struct {
	ID                  string    `json:"id"`
	OriginalServicePath string    `json:"original_service_path"`
	OutputPath          string    `json:"output_path"`
	StartedAt           time.Time `json:"started_at"`
}

// NewCycle opens a cycle that remembers the service path it replaced
func NewCycle(originalServicePath, outputPath string) Cycle {
	return Cycle{
		ID:                  uuid.NewString(),
		OriginalServicePath: originalServicePath,
		OutputPath:          outputPath,
		StartedAt:           time.Now().UTC(),
	}
}
