package commands

import (
	"context"

	"repairflow/internal/adapter/http/routes"
	"repairflow/internal/infrastructure/config"
	"repairflow/internal/infrastructure/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Example: `  # Local run against DynamoDB Local with mocked collaborators
  DYNAMODB_ENDPOINT=http://localhost:8000 \
  TECHNICIAN_DIRECTORY_MOCK=true TECHNICIAN_DIRECTORY_MOCK_ID=<uuid> \
  PAYMENT_METHOD_CATALOG_MOCK=true repairflow serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	log.Info("[cmd][serve] starting",
		zap.Int("port", cfg.Port),
		zap.String("orders_table", cfg.Tables.Orders),
		zap.String("reports_table", cfg.Tables.Reports),
		zap.Bool("directory_mock", cfg.Directory.Mock),
		zap.Strings("kafka_brokers", cfg.Kafka.Brokers),
	)
	return routes.Run(ctx, cfg)
}
