package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-registration/internal/api/http/handlers"
	"github.com/spec-kit/event-registration/internal/auth"
)

// AccountRouteConfig bundles dependencies for the account service routes.
type AccountRouteConfig struct {
	Status  *handlers.StatusHandler
	Health  *handlers.HealthHandler
	Account *handlers.AccountHandler
}

// RegisterAccountRoutes wires the account service HTTP routes. None of them
// run behind the gate; /me validates its bearer token in the handler.
func RegisterAccountRoutes(app *fiber.App, cfg AccountRouteConfig) {
	app.Get("/", cfg.Status.Status)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/token", cfg.Account.Login)
	app.Post("/register", cfg.Account.Register)
	app.Get("/me", cfg.Account.Me)
}

// ResourceRouteConfig bundles dependencies for the resource service routes.
type ResourceRouteConfig struct {
	Status        *handlers.StatusHandler
	Health        *handlers.HealthHandler
	Customers     *handlers.CustomersHandler
	Events        *handlers.EventsHandler
	Registrations *handlers.RegistrationsHandler
	Gate          *auth.Middleware
}

// RegisterResourceRoutes wires the resource service HTTP routes behind the
// authentication gate. The gate's route policy, not the router, decides which
// routes proceed without a token.
func RegisterResourceRoutes(app *fiber.App, cfg ResourceRouteConfig) {
	app.Use(cfg.Gate.Handle)

	app.Get("/", cfg.Status.Status)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	customers := app.Group("/customers")
	customers.Get("", cfg.Customers.List)
	customers.Post("", cfg.Customers.Create)
	customers.Get("/:id", cfg.Customers.Get)
	customers.Put("/:id", cfg.Customers.Update)
	customers.Delete("/:id", cfg.Customers.Delete)

	events := app.Group("/events")
	events.Get("", cfg.Events.List)
	events.Post("", cfg.Events.Create)
	events.Get("/:id", cfg.Events.Get)
	events.Put("/:id", cfg.Events.Update)
	events.Delete("/:id", cfg.Events.Delete)

	registrations := app.Group("/registrations")
	registrations.Get("", cfg.Registrations.List)
	registrations.Post("", cfg.Registrations.Create)
	registrations.Get("/customer/:customerId", cfg.Registrations.ListByCustomer)
	registrations.Get("/event/:eventId", cfg.Registrations.ListByEvent)
	registrations.Get("/:id", cfg.Registrations.Get)
	registrations.Put("/:id", cfg.Registrations.Update)
	registrations.Delete("/:id", cfg.Registrations.Delete)
}
