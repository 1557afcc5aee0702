package ports

import (
	"context"

	"slsbundler.dev/cli/internal/core/domain"
)

// BuildResult is what a bundler reports on success
type BuildResult struct {
	// Engine is the name of the bundler that produced the output
	Engine string

	// OutputFile is the bundle path
	OutputFile string

	// Info is informational text from the bundler, such as warnings or stats
	Info string
}

// Bundler runs an external build step. Failures are reported as
// *domain.ToolingMissingError or *domain.BuildError.
type Bundler interface {
	// Name returns the engine name (e.g., "esbuild", "webpack")
	Name() string

	// Bundle builds cfg, blocking until the bundler finishes
	Bundle(ctx context.Context, cfg domain.BuildConfig) (BuildResult, error)
}
