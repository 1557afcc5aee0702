package domain

import (
	"fmt"
	"strings"
	"time"
)

// Orchestration errors
var (
	ErrCycleInProgress = fmt.Errorf("build cycle already in progress")
	ErrUnknownHook     = fmt.Errorf("unknown lifecycle hook")
)

// CycleInProgressError reports the cycle that blocks a new build. It matches
// ErrCycleInProgress with errors.Is.
type CycleInProgressError struct {
	Cycle    Cycle
	Location string
}

func (e *CycleInProgressError) Error() string {
	return fmt.Sprintf("%v: cycle %s for %s was opened at %s and is recorded in %s; run `slsbundler clean` to remove the bundle and restore the service path",
		ErrCycleInProgress, e.Cycle.ID, e.Cycle.OutputPath, e.Cycle.StartedAt.Format(time.RFC3339), e.Location)
}

func (e *CycleInProgressError) Is(target error) bool {
	return target == ErrCycleInProgress
}

// ToolingMissingError is returned before any invocation when the bundler is
// not installed where it is expected
type ToolingMissingError struct {
	Tool   string
	Path   string
	Remedy string
}

func (e *ToolingMissingError) Error() string {
	msg := fmt.Sprintf("%s not found", e.Tool)
	if e.Path != "" {
		msg += fmt.Sprintf(" at %s", e.Path)
	}
	if e.Remedy != "" {
		msg += fmt.Sprintf("; install it with `%s`", e.Remedy)
	}
	return msg
}

// BuildError carries the bundler's diagnostics verbatim
type BuildError struct {
	Engine      string
	Diagnostics []string
}

// NewBuildError creates a build failure for an engine
func NewBuildError(engine string, diagnostics ...string) *BuildError {
	return &BuildError{Engine: engine, Diagnostics: diagnostics}
}

func (e *BuildError) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("%s build failed", e.Engine)
	}
	return fmt.Sprintf("%s build failed:\n%s", e.Engine, strings.Join(e.Diagnostics, "\n"))
}

// ErrEntryNotFound creates the build failure reported for a missing entry module
func ErrEntryNotFound(engine, path string) *BuildError {
	return NewBuildError(engine, fmt.Sprintf("entry not found: %s", path))
}

// CleanError wraps a failure to remove the output directory
type CleanError struct {
	Path string
	Err  error
}

func (e *CleanError) Error() string {
	return fmt.Sprintf("failed to clean output directory %s: %v", e.Path, e.Err)
}

func (e *CleanError) Unwrap() error {
	return e.Err
}
