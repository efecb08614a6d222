package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/piresc/urbanthreads/internal/pkg/config"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/services/notification/gateway"
	nsqHandler "github.com/piresc/urbanthreads/services/notification/handler/nsq"
	"github.com/piresc/urbanthreads/services/notification/usecase"
)

func main() {
	appName := "notifier-worker"
	configPath := "config/store.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize usecase
	deliveryUC := usecase.NewDeliveryUC(gateway.NewLogMailer(), configs)

	// Initialize NSQ consumer
	handler := nsqHandler.NewNotificationHandler(deliveryUC)
	consumer, err := handler.InitNSQConsumer(configs.NSQ)
	if err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumer", logger.Err(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	consumer.Stop()
	zapLogger.Info("Notifier exiting gracefully")
}
