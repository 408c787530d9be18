package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/service"
	apperrors "github.com/spec-kit/event-registration/pkg/util"
)

// RegistrationsHandler exposes registration CRUD on the resource service.
type RegistrationsHandler struct {
	registrations *service.RegistrationService
}

// NewRegistrationsHandler constructs handler.
func NewRegistrationsHandler(registrations *service.RegistrationService) *RegistrationsHandler {
	return &RegistrationsHandler{registrations: registrations}
}

// List handles GET /registrations.
func (h *RegistrationsHandler) List(c *fiber.Ctx) error {
	registrations, err := h.registrations.List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(registrations)
}

// Get handles GET /registrations/:id.
func (h *RegistrationsHandler) Get(c *fiber.Ctx) error {
	registration, err := h.registrations.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("registration", map[string]any{"id": c.Params("id")})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(registration)
}

// ListByCustomer handles GET /registrations/customer/:customerId.
func (h *RegistrationsHandler) ListByCustomer(c *fiber.Ctx) error {
	registrations, err := h.registrations.ListByCustomerID(c.UserContext(), c.Params("customerId"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(registrations)
}

// ListByEvent handles GET /registrations/event/:eventId.
func (h *RegistrationsHandler) ListByEvent(c *fiber.Ctx) error {
	registrations, err := h.registrations.ListByEventID(c.UserContext(), c.Params("eventId"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(registrations)
}

// Create handles POST /registrations.
func (h *RegistrationsHandler) Create(c *fiber.Ctx) error {
	var registration domain.Registration
	if err := c.BodyParser(&registration); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if registration.CustomerID == "" || registration.EventID == "" {
		return apperrors.NewValidationError("customerId and eventId required", nil)
	}

	created, err := h.registrations.Create(c.UserContext(), &registration)
	if err != nil {
		return apperrors.MapError(err)
	}

	c.Location("/registrations/" + created.ID)
	return c.Status(http.StatusCreated).JSON(created)
}

// Update handles PUT /registrations/:id.
func (h *RegistrationsHandler) Update(c *fiber.Ctx) error {
	var registration domain.Registration
	if err := c.BodyParser(&registration); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if registration.ID != c.Params("id") || registration.CustomerID == "" || registration.EventID == "" {
		return apperrors.NewValidationError("id mismatch or missing fields", nil)
	}

	if err := h.registrations.Update(c.UserContext(), &registration); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("registration", map[string]any{"id": c.Params("id")})
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusOK)
}

// Delete handles DELETE /registrations/:id.
func (h *RegistrationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.registrations.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("registration", map[string]any{"id": c.Params("id")})
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusOK)
}
