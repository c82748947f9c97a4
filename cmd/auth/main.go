package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/serahterima/serahterima/internal/pkg/config"
	"github.com/serahterima/serahterima/internal/pkg/database"
	"github.com/serahterima/serahterima/internal/pkg/health"
	"github.com/serahterima/serahterima/internal/pkg/logger"
	"github.com/serahterima/serahterima/internal/pkg/middleware"
	natspkg "github.com/serahterima/serahterima/internal/pkg/nats"
	"github.com/serahterima/serahterima/internal/pkg/server"
	gatewaynats "github.com/serahterima/serahterima/services/auth/gateway/nats"
	"github.com/serahterima/serahterima/services/auth/handler"
	httpHandler "github.com/serahterima/serahterima/services/auth/handler/http"
	"github.com/serahterima/serahterima/services/auth/repository"
	"github.com/serahterima/serahterima/services/auth/usecase"
)

func main() {
	appName := "auth-service"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/auth.env"
	}
	configs := config.InitConfig(configPath)

	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	authRepo := repository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize Gateway
	notifierGW := gatewaynats.NewNATSGateway(natsClient)

	// Initialize UseCase
	authUC := usecase.NewAuthUC(authRepo, notifierGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(authUC, configs)
	accountHandler := httpHandler.NewAccountHandler(authUC)
	h := handler.NewHandler(authHandler, accountHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	if len(configs.CORS.AllowedOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     configs.CORS.AllowedOrigins,
			AllowCredentials: true,
		}))
	}

	// Register health endpoints
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	h.RegisterRoutes(e)

	// Start background credential cleanup
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	authUC.StartCleanupWorker(workerCtx, time.Duration(configs.Cleanup.IntervalMinutes)*time.Minute)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
