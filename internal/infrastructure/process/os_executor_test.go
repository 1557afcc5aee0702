package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slsbundler.dev/cli/internal/process"
)

func TestExecutor_Run(t *testing.T) {
	tests := []struct {
		name       string
		script     string
		env        map[string]string
		wantExit   int
		wantOutput string
	}{
		{
			name:       "CapturesStdout",
			script:     "echo built",
			wantExit:   0,
			wantOutput: "built\n",
		},
		{
			name:       "CapturesStderrAndExitCode",
			script:     "echo broken >&2; exit 3",
			wantExit:   3,
			wantOutput: "broken\n",
		},
		{
			name:       "AddsCommandEnvironment",
			script:     "echo $BUNDLE_MODE",
			env:        map[string]string{"BUNDLE_MODE": "production"},
			wantExit:   0,
			wantOutput: "production\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := process.NewCommandWithOptions("/bin/sh", []string{"-c", tt.script}, t.TempDir(), tt.env)
			require.NoError(t, err)

			res, err := NewExecutor().Run(context.Background(), cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExit, res.ExitCode)
			assert.Equal(t, tt.wantExit == 0, res.Success())
			assert.Equal(t, tt.wantOutput, res.Output)
		})
	}
}

func TestExecutor_RunsInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	cmd, err := process.NewCommandWithOptions("/bin/sh", []string{"-c", "pwd -P"}, dir, nil)
	require.NoError(t, err)

	res, err := NewExecutor().Run(context.Background(), cmd)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Output)
}

func TestExecutor_StartFailure(t *testing.T) {
	cmd, err := process.NewCommandWithOptions("/nonexistent/webpack", nil, "", nil)
	require.NoError(t, err)

	res, err := NewExecutor().Run(context.Background(), cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start process")
	assert.Equal(t, -1, res.ExitCode)
}

func TestExecutor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd, err := process.NewCommandWithOptions("/bin/sh", []string{"-c", "sleep 5"}, "", nil)
	require.NoError(t, err)

	_, err = NewExecutor().Run(ctx, cmd)
	require.Error(t, err)
}
