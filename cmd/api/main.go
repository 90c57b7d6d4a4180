package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"repairflow/cmd/api/commands"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Repair Flow API
// @version         1.0
// @description     Repair orders and technician report workflow backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		zap.L().Error("[cmd][api] command failed", zap.Error(err))
		_ = zap.L().Sync()
		os.Exit(1)
	}
}
