package process

import (
	"context"
)

// Result is the outcome of a command that ran to completion
type Result struct {
	// ExitCode is the process exit status, or -1 if it never exited normally
	ExitCode int

	// Output holds stdout and stderr interleaved as the tool wrote them
	Output string
}

// Success reports a zero exit status
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner runs commands to completion
type Runner interface {
	// Run blocks until cmd exits or ctx is cancelled. A non-zero exit is
	// reported in Result, not as an error; err is set only when the process
	// could not be started or waited on.
	Run(ctx context.Context, cmd Command) (Result, error)
}
