package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"

	"github.com/jcvalencia/schedula/internal/pkg/config"
	"github.com/jcvalencia/schedula/internal/pkg/database"
	"github.com/jcvalencia/schedula/internal/pkg/health"
	"github.com/jcvalencia/schedula/internal/pkg/logger"
	"github.com/jcvalencia/schedula/internal/pkg/mail"
	"github.com/jcvalencia/schedula/internal/pkg/middleware"
	natspkg "github.com/jcvalencia/schedula/internal/pkg/nats"
	nrpkg "github.com/jcvalencia/schedula/internal/pkg/newrelic"
	"github.com/jcvalencia/schedula/internal/pkg/server"
	"github.com/jcvalencia/schedula/internal/pkg/session"
	"github.com/jcvalencia/schedula/services/auth"
	"github.com/jcvalencia/schedula/services/auth/gateway"
	"github.com/jcvalencia/schedula/services/auth/handler"
	httpHandler "github.com/jcvalencia/schedula/services/auth/handler/http"
	"github.com/jcvalencia/schedula/services/auth/otp"
	"github.com/jcvalencia/schedula/services/auth/repository"
	"github.com/jcvalencia/schedula/services/auth/usecase"
)

func main() {
	appName := "auth-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/auth.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic before the logger so startup is traced
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
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

	shutdownMgr := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdownMgr.Register(func(context.Context) error { return postgresClient.Close() })

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	shutdownMgr.Register(func(context.Context) error { return redisClient.Close() })

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	shutdownMgr.Register(func(context.Context) error { natsClient.Close(); return nil })

	// Select the OTP store backend
	var store otp.Store
	switch configs.OTP.Store {
	case "redis":
		store = otp.NewRedisStore(redisClient)
	default:
		memoryStore := otp.NewMemoryStore(configs.OTP.SweepInterval)
		shutdownMgr.Register(func(context.Context) error { memoryStore.Stop(); return nil })
		store = memoryStore
		zapLogger.Warn("Using in-memory OTP store; codes are lost on restart")
	}
	registry := otp.NewRegistry(store, configs.OTP)

	// Repository, gateway, usecase
	userRepo := repository.NewUserRepo(postgresClient.GetDB())
	authGW := gateway.NewAuthGW(natsClient)

	var mailer auth.Mailer = mail.NewSMTPMailer(configs.SMTP)
	authUC := usecase.NewAuthUC(userRepo, registry, mailer, authGW, configs)

	// Session manager and HTTP handlers
	sessions := session.NewManager(configs.Session)
	authHandler := httpHandler.NewAuthHandler(authUC, sessions)
	h := handler.NewHandler(authHandler, sessions, redisClient.GetClient())

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server terminated",
			zap.String("app", appName),
			zap.Error(err),
		)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownMgr.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", zap.Error(err))
	}
}
