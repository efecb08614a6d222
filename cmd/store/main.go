package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/urbanthreads/internal/pkg/circuitbreaker"
	"github.com/piresc/urbanthreads/internal/pkg/config"
	"github.com/piresc/urbanthreads/internal/pkg/database"
	"github.com/piresc/urbanthreads/internal/pkg/health"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/middleware"
	nrpkg "github.com/piresc/urbanthreads/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/urbanthreads/internal/pkg/nsq"
	"github.com/piresc/urbanthreads/internal/pkg/server"
	"github.com/piresc/urbanthreads/services/notification"
	"github.com/shopspring/decimal"

	catalogHandler "github.com/piresc/urbanthreads/services/catalog/handler/http"
	catalogRepo "github.com/piresc/urbanthreads/services/catalog/repository"
	catalogUC "github.com/piresc/urbanthreads/services/catalog/usecase"
	newsletterHandler "github.com/piresc/urbanthreads/services/newsletter/handler/http"
	newsletterRepo "github.com/piresc/urbanthreads/services/newsletter/repository"
	newsletterUC "github.com/piresc/urbanthreads/services/newsletter/usecase"
	notificationGW "github.com/piresc/urbanthreads/services/notification/gateway"
	notificationUC "github.com/piresc/urbanthreads/services/notification/usecase"
	orderHandler "github.com/piresc/urbanthreads/services/orders/handler/http"
	orderRepo "github.com/piresc/urbanthreads/services/orders/repository"
	orderUC "github.com/piresc/urbanthreads/services/orders/usecase"
	paymentGW "github.com/piresc/urbanthreads/services/payment/gateway"
	paymentHandler "github.com/piresc/urbanthreads/services/payment/handler/http"
	paymentRepo "github.com/piresc/urbanthreads/services/payment/repository"
	paymentUC "github.com/piresc/urbanthreads/services/payment/usecase"
)

func main() {
	appName := "store-service"
	configPath := "config/store.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

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

	// Money is rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))

	// Notifications go to NSQ when nsqd is configured, otherwise they are logged
	var notifyGW notification.NotificationGW
	var producer *nsqpkg.Producer
	if configs.NSQ.NSQDAddress != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
		if err != nil {
			zapLogger.Fatal("Failed to create NSQ producer", logger.Err(err))
		}
		notifyGW = notificationGW.NewNSQGateway(producer, configs.NSQ.NotificationTopic)
		healthService.AddChecker("nsq", health.NewNSQHealthChecker(producer))
	} else {
		logger.Warn("NSQ_NSQD_ADDRESS not set, notifications will only be logged")
		notifyGW = notificationGW.NewLogGateway()
	}

	// Initialize repositories
	productRepo := catalogRepo.NewCachedProductRepository(
		catalogRepo.NewProductRepository(postgresClient.GetDB()),
		redisClient,
		configs.Catalog.CacheTTL,
	)
	ordersRepo := orderRepo.NewOrderRepository(postgresClient.GetDB())
	subscriberRepo := newsletterRepo.NewSubscriberRepository(postgresClient.GetDB())
	transactionRepo := paymentRepo.NewTransactionRepository(postgresClient.GetDB())

	// Initialize gateways
	stripeGW := paymentGW.NewBreakerGateway(
		paymentGW.NewStripeGateway(configs.Payment, nil),
		circuitbreaker.DefaultConfig("stripe"),
	)

	// Initialize usecases
	catalogService := catalogUC.NewCatalogUC(productRepo)
	notifier := notificationUC.NewNotificationUC(notifyGW, configs)
	orderService := orderUC.NewOrderUC(ordersRepo, catalogService, notifier)
	newsletterService := newsletterUC.NewNewsletterUC(subscriberRepo)
	paymentService := paymentUC.NewPaymentUC(transactionRepo, stripeGW, orderService, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     configs.Server.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{echo.GET, echo.POST, echo.OPTIONS},
	}))

	// Register enhanced health endpoints
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	api := e.Group("/api")
	api.GET("/", health.NewRootHandler(appName, configs.App.Version))

	writeLimit := func(resource string) []echo.MiddlewareFunc {
		if !configs.RateLimit.Enabled {
			return nil
		}
		return []echo.MiddlewareFunc{
			middleware.IPRateLimiter(redisClient, resource, configs.RateLimit.Limit, configs.RateLimit.Period),
		}
	}

	catalogHandler.NewCatalogHandler(catalogService).RegisterRoutes(api)
	orderHandler.NewOrderHandler(orderService).RegisterRoutes(api, writeLimit("orders")...)
	newsletterHandler.NewNewsletterHandler(newsletterService).RegisterRoutes(api, writeLimit("newsletter")...)
	paymentHandler.NewPaymentHandler(paymentService).RegisterRoutes(api, writeLimit("checkout")...)

	// Cleanup runs in reverse registration order
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdownManager.Register("redis", func(context.Context) error { return redisClient.Close() })
	if producer != nil {
		shutdownManager.Register("nsq", func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	if nrApp != nil {
		shutdownManager.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	shutdownManager.Shutdown(ctx)

	zapLogger.Info("Server exiting gracefully")
}
