package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"slsbundler.dev/cli/internal/core/domain"
	"slsbundler.dev/cli/internal/infrastructure/host"
)

type resolvedConfig struct {
	Plugin domain.PluginConfig `yaml:"plugin"`
	Build  domain.BuildConfig  `yaml:"build"`
}

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer, opts *host.ServerlessOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the configuration a hook would resolve right now",
		Long: `Show the plugin and build configuration resolved from the defaults,
custom.bundler and custom.webpack in serverless.yml, and SLS_DEBUG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := container.NewSession(*opts)
			if err != nil {
				return err
			}

			plugin, build := session.Resolver.Resolve(session.Host)
			data, err := yaml.Marshal(resolvedConfig{Plugin: plugin, Build: build})
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
