package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolingMissingError_NamesToolAndRemedy(t *testing.T) {
	err := &ToolingMissingError{
		Tool:   "webpack",
		Path:   "/app/node_modules/.bin/webpack",
		Remedy: "npm install --save-dev webpack webpack-cli",
	}
	assert.Equal(t,
		"webpack not found at /app/node_modules/.bin/webpack; install it with `npm install --save-dev webpack webpack-cli`",
		err.Error())

	assert.Equal(t, "esbuild not found", (&ToolingMissingError{Tool: "esbuild"}).Error())
}

func TestBuildError_IncludesDiagnosticsVerbatim(t *testing.T) {
	err := NewBuildError("webpack", "ERROR in ./handler.js\nModule not found: Error: Can't resolve 'lodash'")
	assert.Contains(t, err.Error(), "webpack build failed:")
	assert.Contains(t, err.Error(), "Module not found: Error: Can't resolve 'lodash'")

	assert.Equal(t, "esbuild build failed", NewBuildError("esbuild").Error())
}

func TestErrEntryNotFound(t *testing.T) {
	err := ErrEntryNotFound("esbuild", "./missing.js")
	assert.Equal(t, []string{"entry not found: ./missing.js"}, err.Diagnostics)
}

func TestCleanError_Unwraps(t *testing.T) {
	err := &CleanError{Path: "dist", Err: fs.ErrPermission}
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "dist")
}

func TestNewCycle(t *testing.T) {
	a := NewCycle("/", "/app/dist")
	b := NewCycle("/", "/app/dist")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "/", a.OriginalServicePath)
	assert.Equal(t, "/app/dist", a.OutputPath)
	assert.False(t, a.StartedAt.IsZero())
}

func TestCycleInProgressError_NamesCycleAndRemedy(t *testing.T) {
	cycle := NewCycle("/svc", "/svc/dist")
	err := &CycleInProgressError{Cycle: cycle, Location: "/svc/.slsbundler/cycle.json"}

	assert.True(t, errors.Is(err, ErrCycleInProgress))
	assert.Contains(t, err.Error(), ErrCycleInProgress.Error())
	assert.Contains(t, err.Error(), cycle.ID)
	assert.Contains(t, err.Error(), "/svc/.slsbundler/cycle.json")
	assert.Contains(t, err.Error(), "slsbundler clean")
}
