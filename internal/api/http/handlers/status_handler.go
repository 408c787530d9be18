package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// StatusHandler answers the root status route of a service.
type StatusHandler struct {
	serviceName string
	version     string
}

// NewStatusHandler returns a new handler instance.
func NewStatusHandler(serviceName, version string) *StatusHandler {
	return &StatusHandler{serviceName: serviceName, version: version}
}

// Status handles GET /.
func (h *StatusHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  h.serviceName + " is up and running",
		"service": h.serviceName,
		"version": h.version,
	})
}

// HealthCheck names a dependency probe for the readiness endpoint.
type HealthCheck struct {
	Name  string
	Check func(context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	checks      []HealthCheck
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, checks: checks}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			depStatus[check.Name] = err.Error()
			ready = false
		} else {
			depStatus[check.Name] = "ok"
		}
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
