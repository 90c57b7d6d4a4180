package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "repairflow/docs" // swagger docs
	"repairflow/internal/adapter/http/handlers"
	"repairflow/internal/adapter/persistence/repository"
	"repairflow/internal/infrastructure/config"
	"repairflow/internal/infrastructure/database"
	"repairflow/internal/infrastructure/messaging"
	"repairflow/internal/infrastructure/payments"
	"repairflow/internal/infrastructure/technicians"
	"repairflow/internal/infrastructure/tracing"
	"repairflow/internal/usecase"
	"repairflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// UseCases are the application services exposed over HTTP.
type UseCases struct {
	Orders  usecase.IRepairOrderUseCase
	Reports usecase.IReportWorkflowUseCase
}

// NewRouter builds the gin engine with middlewares, docs, metrics and the /v1 API.
func NewRouter(uc UseCases) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, handlers.NewRepairOrderHandler(uc.Orders))
	addReportRoutes(v1, handlers.NewTechnicianReportHandler(uc.Reports))
	return router
}

// Run wires the service from cfg and serves HTTP until ctx is cancelled, then
// drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	tp, err := tracing.Setup(cfg.Tracing.Exporter, cfg.Tracing.SampleRatio)
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			zap.L().Warn("[http][server] tracer shutdown failed", zap.Error(err))
		}
	}()

	uc, cleanup, err := buildUseCases(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(uc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info("[http][server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildUseCases(ctx context.Context, cfg *config.Config) (UseCases, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return UseCases{}, nil, err
	}
	orderRepo := repository.NewRepairOrderDynamoRepository(ddb, cfg.Tables.Orders)
	reportRepo := repository.NewTechnicianReportDynamoRepository(ddb, cfg.Tables.Reports, cfg.Tables.Orders)

	var directory interfaces.ITechnicianDirectory
	if cfg.Directory.Mock {
		zap.L().Info("[http][wiring] technician directory mock enabled", zap.String("technician_id", cfg.Directory.MockID))
		directory = technicians.NewStaticDirectory(cfg.Directory.MockID)
	} else {
		directory = technicians.NewDirectoryClient(cfg.Directory.BaseURL, cfg.Directory.Timeout)
	}

	var catalog interfaces.IPaymentMethodCatalog
	mpCatalog, err := payments.NewMercadoPagoCatalog(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.CatalogMock)
	if err != nil {
		zap.L().Warn("[http][wiring] payment-method catalog not configured, only presence is checked", zap.Error(err))
	} else {
		catalog = mpCatalog
	}

	cleanup := func() {}
	var publisher interfaces.ICompletionPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kp := messaging.NewKafkaCompletionPublisher(cfg.Kafka.Brokers, cfg.Kafka.CompletionTopic)
		publisher = kp
		cleanup = func() {
			if err := kp.Close(); err != nil {
				zap.L().Warn("[http][wiring] kafka writer close failed", zap.Error(err))
			}
		}
	} else {
		zap.L().Info("[http][wiring] KAFKA_BROKERS not set, completion events are logged only")
		publisher = messaging.NewLogCompletionPublisher(zap.L())
	}

	return UseCases{
		Orders:  usecase.NewRepairOrderUseCase(orderRepo, directory, catalog),
		Reports: usecase.NewReportWorkflowUseCase(reportRepo, orderRepo, publisher),
	}, cleanup, nil
}
