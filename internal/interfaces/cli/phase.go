package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"slsbundler.dev/cli/internal/infrastructure/host"
)

// NewBuildCommand creates the build command
func NewBuildCommand(container *CLIContainer, opts *host.ServerlessOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Bundle the service and switch the service path to the bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := container.NewSession(*opts)
			if err != nil {
				return err
			}

			if err := session.Orchestrator.Build(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), session.Host.ServicePath())
			return nil
		},
	}
}

// NewCleanCommand creates the clean command
func NewCleanCommand(container *CLIContainer, opts *host.ServerlessOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the bundle and restore the original service path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := container.NewSession(*opts)
			if err != nil {
				return err
			}

			if err := session.Orchestrator.Clean(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), session.Host.ServicePath())
			return nil
		},
	}
}
