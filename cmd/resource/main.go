package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/event-registration/internal/api/http"
	"github.com/spec-kit/event-registration/internal/api/http/handlers"
	"github.com/spec-kit/event-registration/internal/auth"
	"github.com/spec-kit/event-registration/internal/config"
	"github.com/spec-kit/event-registration/internal/events"
	"github.com/spec-kit/event-registration/internal/observability"
	"github.com/spec-kit/event-registration/internal/persistence"
	"github.com/spec-kit/event-registration/internal/repository"
	"github.com/spec-kit/event-registration/internal/service"
	"github.com/spec-kit/event-registration/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	customerRepo := repository.NewCustomerRepository(mongo.Database)
	eventRepo := repository.NewCachedEventRepository(
		repository.NewEventRepository(mongo.Database),
		redis.Cache(),
		redis.CacheTTL(),
		metrics,
		logger,
	)
	registrationRepo := repository.NewRegistrationRepository(mongo.Database)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAvailabilityWorker(dispatcher, eventRepo, logger)
	worker.StartAuditWorker(dispatcher, logger)

	customerService := service.NewCustomerService(customerRepo, dispatcher)
	eventService := service.NewEventService(eventRepo)
	registrationService := service.NewRegistrationService(registrationRepo, dispatcher)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes)
	gate := auth.NewMiddleware(tokens, auth.ResourceRoutePolicy())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.Resource.RequestTimeout())

	httptransport.RegisterResourceRoutes(app, httptransport.ResourceRouteConfig{
		Status: handlers.NewStatusHandler(cfg.Resource.Name, cfg.Resource.Version),
		Health: handlers.NewHealthHandler(cfg.Resource.Name, cfg.Resource.Version,
			handlers.HealthCheck{Name: "mongodb", Check: mongo.Ping},
			handlers.HealthCheck{Name: "redis", Check: redis.Ping},
		),
		Customers:     handlers.NewCustomersHandler(customerService),
		Events:        handlers.NewEventsHandler(eventService),
		Registrations: handlers.NewRegistrationsHandler(registrationService),
		Gate:          gate,
	})

	go func() {
		if err := app.Listen(cfg.Resource.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
