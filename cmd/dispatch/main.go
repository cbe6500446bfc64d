package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/ridelink/dispatch/internal/pkg/config"
	"github.com/ridelink/dispatch/internal/pkg/database"
	"github.com/ridelink/dispatch/internal/pkg/health"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/middleware"
	"github.com/ridelink/dispatch/internal/pkg/nats"
	nrpkg "github.com/ridelink/dispatch/internal/pkg/newrelic"
	"github.com/ridelink/dispatch/internal/pkg/websocket"
	driversGateway "github.com/ridelink/dispatch/services/drivers/gateway"
	driversHandler "github.com/ridelink/dispatch/services/drivers/handler"
	driversRepository "github.com/ridelink/dispatch/services/drivers/repository"
	driversUsecase "github.com/ridelink/dispatch/services/drivers/usecase"
	realtimeHandler "github.com/ridelink/dispatch/services/realtime/handler"
	realtimeRepository "github.com/ridelink/dispatch/services/realtime/repository"
	realtimeUsecase "github.com/ridelink/dispatch/services/realtime/usecase"
	ridesGateway "github.com/ridelink/dispatch/services/rides/gateway"
	ridesHandler "github.com/ridelink/dispatch/services/rides/handler"
	ridesRepository "github.com/ridelink/dispatch/services/rides/repository"
	ridesUsecase "github.com/ridelink/dispatch/services/rides/usecase"
)

func main() {
	appName := "ridelink-dispatch"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	rideRepo := ridesRepository.NewRideRepository(configs, postgresClient.GetDB())
	driverRepo := driversRepository.NewDriverRepository(configs, postgresClient.GetDB())
	locationRepo := realtimeRepository.NewLocationRepository(configs, redisClient)

	// Initialize gateways
	rideGW := ridesGateway.NewRideGW(natsClient)
	driverGW := driversGateway.NewDriverGW(natsClient)

	// Initialize usecases
	rideUC := ridesUsecase.NewRideUC(configs, rideRepo, rideGW)
	driverUC := driversUsecase.NewDriverUC(configs, driverRepo, driverGW)
	locationUC := realtimeUsecase.NewLocationUC(configs, locationRepo)

	// Initialize WebSocket connection manager
	writeTimeout := time.Duration(configs.Realtime.WriteTimeoutMs) * time.Millisecond
	wsManager := websocket.NewManager(configs.JWT, writeTimeout)

	// Initialize handlers
	rideHandler := ridesHandler.NewHandler(rideUC, configs)
	driverHandler := driversHandler.NewHandler(driverUC, configs)
	wsHandler := realtimeHandler.NewWebSocketHandler(wsManager, locationUC, configs)
	natsHandler := realtimeHandler.NewNATSHandler(wsManager, natsClient)

	// Initialize NATS consumers
	if err := natsHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer natsHandler.Close()

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrecho.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize health service
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	rideHandler.RegisterRoutes(e)
	driverHandler.RegisterRoutes(e)
	wsHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	logger.Info("Server exited")
}
