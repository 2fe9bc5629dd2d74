package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kiranakart/auth-service/internal/pkg/config"
	"github.com/kiranakart/auth-service/internal/pkg/database"
	"github.com/kiranakart/auth-service/internal/pkg/health"
	"github.com/kiranakart/auth-service/internal/pkg/logger"
	"github.com/kiranakart/auth-service/internal/pkg/middleware"
	natspkg "github.com/kiranakart/auth-service/internal/pkg/nats"
	"github.com/kiranakart/auth-service/services/auth/gateway"
	gatewayHTTP "github.com/kiranakart/auth-service/services/auth/gateway/http"
	gatewayNATS "github.com/kiranakart/auth-service/services/auth/gateway/nats"
	"github.com/kiranakart/auth-service/services/auth/handler"
	handlerHTTP "github.com/kiranakart/auth-service/services/auth/handler/http"
	"github.com/kiranakart/auth-service/services/auth/repository"
	"github.com/kiranakart/auth-service/services/auth/usecase"
)

func main() {
	appName := "auth-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/auth.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

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
	sessionRepo := repository.NewSessionRepo(redisClient)

	// Initialize Gateway
	authorityGW := gatewayHTTP.NewAuthorityGateway(configs.Authority)
	eventGW := gatewayNATS.NewSessionEventGateway(natsClient)
	authGW := gateway.NewAuthGW(authorityGW, eventGW)

	// Initialize UseCase and rehydrate the persisted session
	authUC := usecase.NewAuthUC(configs, authGW, sessionRepo)
	if _, err := authUC.Bootstrap(context.Background()); err != nil {
		zapLogger.Warn("Session bootstrap failed", zap.Error(err))
	}

	// Handlers for HTTP
	authHandler := handlerHTTP.NewAuthHandler(authUC)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	handler.RegisterRoutes(e, authHandler, configs)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
