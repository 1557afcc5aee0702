package process

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Command represents an external tool invocation
type Command struct {
	executable string
	args       []string
	workingDir string
	env        map[string]string
}

// NewCommandWithOptions creates a command with a working directory and
// extra environment
func NewCommandWithOptions(executable string, args []string, workingDir string, env map[string]string) (Command, error) {
	if executable == "" {
		return Command{}, fmt.Errorf("executable cannot be empty")
	}

	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			workingDir = "."
		}
	}

	// Resolve working directory to absolute path
	if !filepath.IsAbs(workingDir) {
		absDir, err := filepath.Abs(workingDir)
		if err == nil {
			workingDir = absDir
		}
	}

	envCopy := make(map[string]string, len(env))
	for k, v := range env {
		envCopy[k] = v
	}

	return Command{
		executable: executable,
		args:       append([]string(nil), args...), // Copy slice
		workingDir: workingDir,
		env:        envCopy,
	}, nil
}

// Executable returns the command executable
func (c Command) Executable() string {
	return c.executable
}

// Args returns a copy of the command arguments
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// WorkingDir returns the working directory for the command
func (c Command) WorkingDir() string {
	return c.workingDir
}

// Env returns a copy of the environment variables
func (c Command) Env() map[string]string {
	envCopy := make(map[string]string, len(c.env))
	for k, v := range c.env {
		envCopy[k] = v
	}
	return envCopy
}

// String returns a string representation of the command
func (c Command) String() string {
	if len(c.args) == 0 {
		return c.executable
	}
	return fmt.Sprintf("%s %s", c.executable, strings.Join(c.args, " "))
}
