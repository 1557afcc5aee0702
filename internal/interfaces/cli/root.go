package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"slsbundler.dev/cli/internal/application/services"
	"slsbundler.dev/cli/internal/infrastructure/config"
	"slsbundler.dev/cli/internal/infrastructure/host"
	"slsbundler.dev/cli/internal/infrastructure/logging"
	"slsbundler.dev/cli/internal/infrastructure/state"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// Session is everything one command needs, built from the global flags
type Session struct {
	Host         *host.ServerlessHost
	Resolver     *config.Resolver
	Store        *state.FileStore
	Orchestrator *services.Orchestrator
}

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Logger *logging.ConsoleLogger

	// NewSession wires a session for the service described by opts
	NewSession func(opts host.ServerlessOptions) (*Session, error)
}

// NewRootCommand creates the base command when called without any subcommands
func NewRootCommand(container *CLIContainer) *cobra.Command {
	opts := &host.ServerlessOptions{}

	var rootCmd = &cobra.Command{
		Use:   "slsbundler",
		Short: "Bundle serverless functions before invoke and deploy",
		Long: `slsbundler runs a JavaScript bundler right before a serverless function is
invoked locally or deployed, points the framework's service path at the
bundle, and restores it (removing the bundle) once the command is done.

It is driven by the framework's lifecycle hooks:

  before:invoke:local:invoke   build
  after:invoke:local:invoke    clean
  after:deploy:initialize      build
  after:deploy:deploy          clean`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().StringVar(&opts.ServiceDir, "service-dir", "", "Service root directory (default is the current directory)")
	rootCmd.PersistentFlags().StringVar(&opts.ManifestPath, "config", "", "Path to serverless.yml (default is <service-dir>/serverless.yml)")
	rootCmd.PersistentFlags().StringVar(&opts.Function, "function", "", "Name of the function being invoked")
	rootCmd.PersistentFlags().StringVar(&opts.Handler, "handler", "", "Handler reference (module.function), overrides --function")
	rootCmd.PersistentFlags().StringVar(&opts.ServicePath, "service-path", "", "Current framework service path (default is the service directory)")

	rootCmd.AddCommand(NewHookCommand(container, opts))
	rootCmd.AddCommand(NewBuildCommand(container, opts))
	rootCmd.AddCommand(NewCleanCommand(container, opts))
	rootCmd.AddCommand(NewConfigCommand(container, opts))
	rootCmd.AddCommand(NewHooksCommand())

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the command tree. Errors are displayed here rather than by
// the orchestrator, then the process exits non-zero.
func Execute(ctx context.Context, container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		container.Logger.Error("%v", err)
		os.Exit(1)
	}
}
