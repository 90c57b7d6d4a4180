package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repairflow",
		Short: "Repair order and technician report service",
		Long: `repairflow serves the repair order API: customers open orders, a technician
is assigned from the directory, and the technician report moves through
draft, approval and completion.

Configuration is read from the environment (a .env file is loaded first).`,
		SilenceUsage: true,
		// Running the binary without a subcommand starts the server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newInitTablesCommand())
	return rootCmd
}
