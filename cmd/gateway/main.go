package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adesai/billbridge/internal/pkg/config"
	"github.com/adesai/billbridge/internal/pkg/database"
	"github.com/adesai/billbridge/internal/pkg/health"
	"github.com/adesai/billbridge/internal/pkg/logger"
	"github.com/adesai/billbridge/internal/pkg/middleware"
	nsqpkg "github.com/adesai/billbridge/internal/pkg/nsq"
	"github.com/adesai/billbridge/internal/pkg/server"
	"github.com/adesai/billbridge/services/auth/gateway/sms"
	authHTTP "github.com/adesai/billbridge/services/auth/handler/http"
	authRepo "github.com/adesai/billbridge/services/auth/repository"
	authUsecase "github.com/adesai/billbridge/services/auth/usecase"
	"github.com/adesai/billbridge/services/transaction"
	"github.com/adesai/billbridge/services/transaction/gateway/audit"
	"github.com/adesai/billbridge/services/transaction/gateway/provider"
	txnHandler "github.com/adesai/billbridge/services/transaction/handler"
	txnUsecase "github.com/adesai/billbridge/services/transaction/usecase"
)

func main() {
	appName := "billbridge-gateway"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/gateway.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Redis backs the OTP challenge store
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// The audit trail is optional: with no NSQ address configured the
	// gateway runs without it.
	var auditGW transaction.AuditGW
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
		auditGW = audit.NewPublisher(producer, configs.NSQ.AuditTopic)
	} else {
		zapLogger.Warn("NSQ address not configured, transaction audit trail disabled")
	}

	providerClient := provider.NewClient(configs.Provider)
	transactionUC := txnUsecase.NewTransactionUC(providerClient, auditGW, configs)

	authRepository := authRepo.NewAuthRepo(configs, redisClient)
	smsClient := sms.NewClient(configs.SMS)
	authUC := authUsecase.NewAuthUC(configs, authRepository, smsClient)

	transactionHandler := txnHandler.NewHandler(transactionUC)
	authHandler := authHTTP.NewAuthHandler(authUC)

	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	transactionHandler.RegisterRoutes(e)
	authHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
