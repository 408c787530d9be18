package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/event-registration/internal/api/http"
	"github.com/spec-kit/event-registration/internal/api/http/handlers"
	"github.com/spec-kit/event-registration/internal/client"
	"github.com/spec-kit/event-registration/internal/config"
	"github.com/spec-kit/event-registration/internal/observability"
	"github.com/spec-kit/event-registration/internal/service"
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

	resourceClient := client.NewResourceClient(cfg.Account.ResourceBaseURL, cfg.Account.RequestTimeout())
	accountService := service.NewAccountService(cfg.Auth, resourceClient)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.Account.RequestTimeout())

	httptransport.RegisterAccountRoutes(app, httptransport.AccountRouteConfig{
		Status: handlers.NewStatusHandler(cfg.Account.Name, cfg.Account.Version),
		Health: handlers.NewHealthHandler(cfg.Account.Name, cfg.Account.Version,
			handlers.HealthCheck{Name: "resource_service", Check: resourceClient.Ping},
		),
		Account: handlers.NewAccountHandler(accountService),
	})

	go func() {
		if err := app.Listen(cfg.Account.Addr()); err != nil {
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
