package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"slsbundler.dev/cli/internal/application/services"
	"slsbundler.dev/cli/internal/infrastructure/host"
)

// NewHookCommand creates the hook command, the entry point for the framework shim
func NewHookCommand(container *CLIContainer, opts *host.ServerlessOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hook <event>",
		Short: "Fire a lifecycle hook and print the resulting service path",
		Long: `Fire one of the framework lifecycle hooks the plugin registers.

On success the service path the framework should use from now on is printed
on stdout.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: hookNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := container.NewSession(*opts)
			if err != nil {
				return err
			}

			if err := session.Orchestrator.Fire(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), session.Host.ServicePath())
			return nil
		},
	}
}

// NewHooksCommand lists the hooks and the phase each one runs
func NewHooksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hooks",
		Short: "List the lifecycle hooks the plugin registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, b := range services.HookTable {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", b.Hook, b.Phase)
			}
			return nil
		},
	}
}

func hookNames() []string {
	names := make([]string, 0, len(services.HookTable))
	for _, b := range services.HookTable {
		names = append(names, b.Hook)
	}
	return names
}
