package commands

import (
	"fmt"
	"time"

	"repairflow/internal/adapter/persistence/repository"
	"repairflow/internal/infrastructure/config"
	"repairflow/internal/infrastructure/database"
	"repairflow/internal/infrastructure/logger"

	"github.com/spf13/cobra"
)

func newInitTablesCommand() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "init-tables",
		Short: "Create the DynamoDB tables and indexes if missing",
		Long: `Create the repair orders table (GSI customer_id-index) and the technician
reports table (keyed by order id). Tables that already exist are not modified.`,
		Example: `  DYNAMODB_ENDPOINT=http://localhost:8000 repairflow init-tables --wait 30s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadStorage()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel)
			defer func() { _ = log.Sync() }()

			ddb, err := database.ConnectDynamoDB(cmd.Context(), cfg.AWS)
			if err != nil {
				return err
			}
			created, err := repository.EnsureTables(cmd.Context(), ddb, cfg.Tables.Orders, cfg.Tables.Reports, wait)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tables created: %d\n", len(created))
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "wait up to this long for new tables to become ACTIVE")
	return cmd
}
