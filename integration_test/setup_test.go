package integration_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// Common test constants
const (
	TestTimeout      = 60 * time.Second
	ShortTestTimeout = 5 * time.Second
)

func setupTestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// buildCLIBinary compiles cmd/main.go into a temporary directory
func buildCLIBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "slsbundler-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../cmd/main.go")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI binary: %v\nOutput: %s", err, output)
	}
	return binaryPath
}

// createTestService writes a minimal service with one function into a temp dir
func createTestService(t *testing.T, manifest string) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"serverless.yml":     manifest,
		"src/handler.js":     "const { greet } = require('./greet');\nmodule.exports.hello = async () => greet('world');\n",
		"src/greet.js":       "module.exports.greet = (name) => `hello ${name}`;\n",
		"src/broken/main.js": "module.exports.main = (;\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}
