package bundler

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"slsbundler.dev/cli/internal/core/domain"
	"slsbundler.dev/cli/internal/core/ports"
)

// ESBuild bundles in-process with the esbuild library
type ESBuild struct {
	workDir string
	logger  ports.Logger
}

// NewESBuild creates an esbuild bundler resolving relative paths against workDir
func NewESBuild(workDir string, logger ports.Logger) *ESBuild {
	return &ESBuild{workDir: absDir(workDir), logger: logger}
}

func (b *ESBuild) Name() string { return domain.EngineESBuild }

// Bundle runs esbuild with options derived from cfg. esbuild has no
// cancellation hook for a synchronous build, so ctx is only checked before
// starting.
func (b *ESBuild) Bundle(ctx context.Context, cfg domain.BuildConfig) (ports.BuildResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.BuildResult{}, err
	}
	if !entryExists(b.workDir, cfg.Entry) {
		return ports.BuildResult{}, domain.ErrEntryNotFound(b.Name(), cfg.Entry)
	}

	opts := b.buildOptions(cfg)
	b.logger.Debug("running esbuild (%s -> %s)", cfg.Entry, opts.Outfile)
	result := api.Build(opts)

	if len(result.Errors) > 0 {
		diagnostics := api.FormatMessages(result.Errors, api.FormatMessagesOptions{
			Kind: api.ErrorMessage,
		})
		return ports.BuildResult{}, domain.NewBuildError(b.Name(), trimAll(diagnostics)...)
	}

	info := fmt.Sprintf("bundled %s into %s", cfg.Entry, opts.Outfile)
	if len(result.Warnings) > 0 {
		warnings := api.FormatMessages(result.Warnings, api.FormatMessagesOptions{
			Kind: api.WarningMessage,
		})
		info += "\n" + strings.Join(trimAll(warnings), "\n")
	}

	return ports.BuildResult{
		Engine:     b.Name(),
		OutputFile: opts.Outfile,
		Info:       info,
	}, nil
}

func (b *ESBuild) buildOptions(cfg domain.BuildConfig) api.BuildOptions {
	opts := api.BuildOptions{
		EntryPoints:       []string{cfg.Entry},
		Outfile:           cfg.OutputFile(),
		AbsWorkingDir:     b.workDir,
		Bundle:            true,
		Write:             true,
		Platform:          platformFor(cfg.Target),
		Format:            formatFor(cfg.Output.LibraryTarget),
		External:          cfg.Externals,
		MinifyWhitespace:  cfg.Minify,
		MinifyIdentifiers: cfg.Minify,
		MinifySyntax:      cfg.Minify,
		LogLevel:          api.LogLevelSilent,
	}
	if opts.Platform == api.PlatformNode {
		opts.Target = api.ES2020
	}
	if cfg.SourceMaps() {
		opts.Sourcemap = api.SourceMapLinked
	}
	if opts.Format == api.FormatIIFE && cfg.Output.Library != "" {
		opts.GlobalName = cfg.Output.Library
	}
	return opts
}

func platformFor(target string) api.Platform {
	switch target {
	case "web", "browser":
		return api.PlatformBrowser
	case "neutral":
		return api.PlatformNeutral
	default:
		return api.PlatformNode
	}
}

// formatFor maps webpack's output.libraryTarget onto an esbuild format.
// esbuild has no UMD output; CommonJS is what the node runtime loads.
func formatFor(libraryTarget string) api.Format {
	switch libraryTarget {
	case "module", "esm":
		return api.FormatESModule
	case "var", "iife", "window":
		return api.FormatIIFE
	default:
		return api.FormatCommonJS
	}
}

func trimAll(msgs []string) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, strings.TrimRight(m, "\n"))
	}
	return out
}

var _ ports.Bundler = (*ESBuild)(nil)
