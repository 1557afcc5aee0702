package di

import (
	"fmt"
	"os"
	"path/filepath"

	"slsbundler.dev/cli/internal/application/services"
	"slsbundler.dev/cli/internal/infrastructure/bundler"
	"slsbundler.dev/cli/internal/infrastructure/config"
	"slsbundler.dev/cli/internal/infrastructure/host"
	"slsbundler.dev/cli/internal/infrastructure/logging"
	"slsbundler.dev/cli/internal/infrastructure/process"
	"slsbundler.dev/cli/internal/infrastructure/state"
	"slsbundler.dev/cli/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	// Shared across sessions
	Logger    *logging.ConsoleLogger
	Env       *config.EnvLoader
	Validator *config.ConfigValidator
	Executor  *process.Executor

	// CLI
	CLIContainer *cli.CLIContainer
}

// NewContainer creates and configures the dependency injection container
func NewContainer() *Container {
	return NewContainerWithLogger(logging.NewConsoleLogger())
}

// NewContainerWithLogger creates a container writing logs through logger
func NewContainerWithLogger(logger *logging.ConsoleLogger) *Container {
	c := &Container{
		Logger:    logger,
		Env:       config.NewEnvLoader(),
		Validator: config.NewConfigValidator(),
		Executor:  process.NewExecutor(),
	}
	c.CLIContainer = &cli.CLIContainer{
		Logger:     c.Logger,
		NewSession: c.NewSession,
	}
	return c
}

// NewSession wires host, resolver, cycle store, bundlers and orchestrator
// for one service directory
func (c *Container) NewSession(opts host.ServerlessOptions) (*cli.Session, error) {
	serviceDir := opts.ServiceDir
	if serviceDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine service directory: %w", err)
		}
		serviceDir = wd
	}
	serviceDir, err := filepath.Abs(serviceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service directory: %w", err)
	}
	opts.ServiceDir = serviceDir

	h, err := host.LoadServerlessHost(opts)
	if err != nil {
		return nil, err
	}

	resolver := config.NewResolverWithWorkDir(c.Env, c.Logger, serviceDir)
	store := state.NewFileStore(serviceDir)
	orchestrator := services.NewOrchestrator(
		h,
		resolver,
		c.Validator,
		store,
		c.Logger,
		bundler.NewESBuild(serviceDir, c.Logger),
		bundler.NewWebpack(serviceDir, c.Executor, c.Logger),
	)

	return &cli.Session{
		Host:         h,
		Resolver:     resolver,
		Store:        store,
		Orchestrator: orchestrator,
	}, nil
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}
