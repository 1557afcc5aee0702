package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slsbundler.dev/cli/internal/core/domain"
	"slsbundler.dev/cli/internal/core/ports"
)

// Serverless lifecycle events the plugin hooks into
const (
	HookBeforeInvokeLocal = "before:invoke:local:invoke"
	HookAfterInvokeLocal  = "after:invoke:local:invoke"
	HookAfterDeployInit   = "after:deploy:initialize"
	HookAfterDeployDeploy = "after:deploy:deploy"
)

// Phase is the operation a hook runs
type Phase string

const (
	PhaseBuild Phase = "build"
	PhaseClean Phase = "clean"
)

// HookBinding pairs a lifecycle event with the phase it triggers
type HookBinding struct {
	Hook  string
	Phase Phase
}

// HookTable lists every hook in the order the framework fires them
var HookTable = []HookBinding{
	{Hook: HookBeforeInvokeLocal, Phase: PhaseBuild},
	{Hook: HookAfterInvokeLocal, Phase: PhaseClean},
	{Hook: HookAfterDeployInit, Phase: PhaseBuild},
	{Hook: HookAfterDeployDeploy, Phase: PhaseClean},
}

// HookFunc is a zero-argument hook handler as registered with the host
type HookFunc func(ctx context.Context) error

// ConfigResolver produces the configs for one hook firing
type ConfigResolver interface {
	Resolve(host ports.Host) (domain.PluginConfig, domain.BuildConfig)
	WorkDir() string
}

// BuildValidator checks a BuildConfig, returning diagnostics when invalid
type BuildValidator interface {
	ValidateBuildConfig(cfg domain.BuildConfig) []string
}

// Orchestrator runs the bundler before invoke/deploy and points the host at
// its output, then restores the host and removes the output afterwards
type Orchestrator struct {
	host      ports.Host
	resolver  ConfigResolver
	validator BuildValidator
	bundlers  map[string]ports.Bundler
	store     ports.CycleStore
	logger    ports.Logger
	removeAll func(path string) error
}

// NewOrchestrator creates an orchestrator over host. bundlers are keyed by
// their Name().
func NewOrchestrator(
	host ports.Host,
	resolver ConfigResolver,
	validator BuildValidator,
	store ports.CycleStore,
	logger ports.Logger,
	bundlers ...ports.Bundler,
) *Orchestrator {
	byName := make(map[string]ports.Bundler, len(bundlers))
	for _, b := range bundlers {
		byName[b.Name()] = b
	}
	return &Orchestrator{
		host:      host,
		resolver:  resolver,
		validator: validator,
		bundlers:  byName,
		store:     store,
		logger:    logger,
		removeAll: os.RemoveAll,
	}
}

// Hooks returns the handlers to register with the host, keyed by event name
func (o *Orchestrator) Hooks() map[string]HookFunc {
	hooks := make(map[string]HookFunc, len(HookTable))
	for _, b := range HookTable {
		hooks[b.Hook] = o.handlerFor(b.Phase)
	}
	return hooks
}

// Fire runs the handler bound to hook
func (o *Orchestrator) Fire(ctx context.Context, hook string) error {
	handler, ok := o.Hooks()[hook]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownHook, hook)
	}
	return handler(ctx)
}

// Build resolves configuration and runs the build phase
func (o *Orchestrator) Build(ctx context.Context) error {
	return o.handlerFor(PhaseBuild)(ctx)
}

// Clean resolves configuration and runs the clean phase
func (o *Orchestrator) Clean(ctx context.Context) error {
	return o.handlerFor(PhaseClean)(ctx)
}

// handlerFor wraps a phase so configuration is resolved on every call
func (o *Orchestrator) handlerFor(phase Phase) HookFunc {
	return func(ctx context.Context) error {
		plugin, build := o.resolver.Resolve(o.host)
		switch phase {
		case PhaseBuild:
			return o.build(ctx, plugin, build)
		case PhaseClean:
			return o.clean(ctx, plugin, build)
		default:
			return fmt.Errorf("unknown phase: %s", phase)
		}
	}
}

func (o *Orchestrator) build(ctx context.Context, plugin domain.PluginConfig, cfg domain.BuildConfig) error {
	if current, held, err := o.store.Load(ctx); err != nil {
		return fmt.Errorf("failed to read build cycle: %w", err)
	} else if held {
		return &domain.CycleInProgressError{Cycle: current, Location: o.store.Location()}
	}

	if diagnostics := o.validator.ValidateBuildConfig(cfg); len(diagnostics) > 0 {
		return domain.NewBuildError(plugin.Engine, diagnostics...)
	}

	bundler, ok := o.bundlers[plugin.Engine]
	if !ok {
		return &domain.ToolingMissingError{Tool: fmt.Sprintf("bundler engine %q", plugin.Engine)}
	}

	o.logger.Debug("running %s", bundler.Name())
	result, err := bundler.Bundle(ctx, cfg)
	if err != nil {
		return err
	}
	if result.Info != "" {
		o.logger.Info("%s", result.Info)
	}

	cycle := domain.NewCycle(o.host.ServicePath(), cfg.Output.Path)
	if err := o.store.Save(ctx, cycle); err != nil {
		return fmt.Errorf("failed to record build cycle: %w", err)
	}
	o.host.SetServicePath(cfg.Output.Path)
	o.logger.Debug("service path %s -> %s", cycle.OriginalServicePath, cfg.Output.Path)
	return nil
}

func (o *Orchestrator) clean(ctx context.Context, plugin domain.PluginConfig, cfg domain.BuildConfig) error {
	var cleanErr error
	if plugin.CleanAfter {
		o.logger.Debug("cleaning output dir(%s)", cfg.Output.Path)
		cleanErr = o.removeOutput(cfg.Output.Path)
	}

	cycle, held, err := o.store.Load(ctx)
	if err != nil {
		if cleanErr != nil {
			return cleanErr
		}
		return fmt.Errorf("failed to read build cycle: %w", err)
	}
	if held {
		o.host.SetServicePath(cycle.OriginalServicePath)
		if err := o.store.Clear(ctx); err != nil && cleanErr == nil {
			return fmt.Errorf("failed to clear build cycle: %w", err)
		}
		o.logger.Debug("service path restored to %s", cycle.OriginalServicePath)
	}

	return cleanErr
}

// removeOutput deletes the output directory. A directory that is already
// gone is not an error; one that contains the working directory is never
// removed.
func (o *Orchestrator) removeOutput(path string) error {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(o.resolver.WorkDir(), abs)
	}
	abs = filepath.Clean(abs)

	if contains(abs, filepath.Clean(o.resolver.WorkDir())) {
		return &domain.CleanError{Path: path, Err: fmt.Errorf("refusing to remove a directory containing the working directory")}
	}
	if err := o.removeAll(abs); err != nil {
		return &domain.CleanError{Path: path, Err: err}
	}
	return nil
}

// contains reports whether dir is target or one of its ancestors
func contains(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
