package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"slsbundler.dev/cli/internal/process"
)

// Executor implements process.Runner on top of os/exec
type Executor struct {
	env []string
}

// NewExecutor creates a new process executor inheriting the current environment
func NewExecutor() *Executor {
	return &Executor{env: os.Environ()}
}

// Run starts cmd and waits for it to exit, capturing combined output
func (e *Executor) Run(ctx context.Context, cmd process.Command) (process.Result, error) {
	execCmd := exec.CommandContext(ctx, cmd.Executable(), cmd.Args()...)
	execCmd.Dir = cmd.WorkingDir()
	execCmd.Env = e.buildEnvironment(cmd.Env())

	out := &lockedBuffer{}
	execCmd.Stdout = out
	execCmd.Stderr = out

	if err := execCmd.Start(); err != nil {
		return process.Result{ExitCode: -1}, fmt.Errorf("failed to start process: %w", err)
	}

	err := execCmd.Wait()
	result := process.Result{ExitCode: 0, Output: out.String()}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1
	if ctx.Err() != nil {
		return result, fmt.Errorf("process interrupted: %w", ctx.Err())
	}
	return result, fmt.Errorf("failed to wait for process: %w", err)
}

// buildEnvironment combines the base environment with command-specific variables
func (e *Executor) buildEnvironment(cmdEnv map[string]string) []string {
	env := append([]string(nil), e.env...) // Copy base environment

	for key, value := range cmdEnv {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}

// lockedBuffer lets stdout and stderr share one buffer
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var _ process.Runner = (*Executor)(nil)
