package handlers_test

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/event-registration/internal/api/http"
	"github.com/spec-kit/event-registration/internal/observability"
)

// newTestApp builds a fiber app with the shared middlewares attached, so
// handler tests exercise the same error envelope as production.
func newTestApp() *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	return app
}
