package bundler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slsbundler.dev/cli/internal/core/domain"
	"slsbundler.dev/cli/internal/core/ports"
	"slsbundler.dev/cli/internal/process"
)

// WebpackInstallCommand is the remedy reported when webpack is missing
const WebpackInstallCommand = "npm install --save-dev webpack webpack-cli"

// Webpack bundles by running the project's locally installed webpack CLI
type Webpack struct {
	workDir string
	runner  process.Runner
	logger  ports.Logger
}

// NewWebpack creates a webpack bundler for the project in workDir
func NewWebpack(workDir string, runner process.Runner, logger ports.Logger) *Webpack {
	return &Webpack{workDir: absDir(workDir), runner: runner, logger: logger}
}

func (b *Webpack) Name() string { return domain.EngineWebpack }

// BinaryPath is where npm installs the webpack executable
func (b *Webpack) BinaryPath() string {
	return filepath.Join(b.workDir, "node_modules", ".bin", "webpack")
}

// Preflight checks that the webpack executable is installed and runnable
func (b *Webpack) Preflight() error {
	bin := b.BinaryPath()
	info, err := os.Stat(bin)
	if err != nil || info.IsDir() || info.Mode().Perm()&0o111 == 0 {
		return &domain.ToolingMissingError{
			Tool:   "webpack",
			Path:   bin,
			Remedy: WebpackInstallCommand,
		}
	}
	return nil
}

// Bundle runs webpack with cfg expressed as CLI flags
func (b *Webpack) Bundle(ctx context.Context, cfg domain.BuildConfig) (ports.BuildResult, error) {
	if err := b.Preflight(); err != nil {
		return ports.BuildResult{}, err
	}
	if !entryExists(b.workDir, cfg.Entry) {
		return ports.BuildResult{}, domain.ErrEntryNotFound(b.Name(), cfg.Entry)
	}

	cmd, err := process.NewCommandWithOptions(b.BinaryPath(), b.args(cfg), b.workDir, nil)
	if err != nil {
		return ports.BuildResult{}, fmt.Errorf("failed to prepare webpack command: %w", err)
	}

	b.logger.Debug("running %s", cmd.String())
	res, err := b.runner.Run(ctx, cmd)
	if err != nil {
		return ports.BuildResult{}, fmt.Errorf("failed to run webpack: %w", err)
	}

	output := strings.TrimRight(res.Output, "\n")
	if !res.Success() {
		if output == "" {
			output = fmt.Sprintf("webpack exited with status %d", res.ExitCode)
		}
		return ports.BuildResult{}, domain.NewBuildError(b.Name(), output)
	}

	return ports.BuildResult{
		Engine:     b.Name(),
		OutputFile: cfg.OutputFile(),
		Info:       output,
	}, nil
}

func (b *Webpack) args(cfg domain.BuildConfig) []string {
	args := []string{
		"--entry", cfg.Entry,
		"--target", cfg.Target,
		"--output-path", cfg.Output.Path,
		"--output-filename", cfg.Output.Filename,
		"--no-color",
	}
	if cfg.Output.LibraryTarget != "" {
		args = append(args, "--output-library-type", cfg.Output.LibraryTarget)
	}
	if cfg.Output.Library != "" {
		args = append(args, "--output-library-name", cfg.Output.Library)
	}
	if cfg.Devtool != "" {
		args = append(args, "--devtool", cfg.Devtool)
	}
	for _, ext := range cfg.Externals {
		args = append(args, "--externals", ext)
	}
	if cfg.Minify {
		args = append(args, "--mode", "production")
	} else {
		args = append(args, "--mode", "none")
	}
	return args
}

var _ ports.Bundler = (*Webpack)(nil)
