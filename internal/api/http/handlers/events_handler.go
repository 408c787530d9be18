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

// EventsHandler exposes event CRUD on the resource service.
type EventsHandler struct {
	events *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(events *service.EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

// List handles GET /events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.events.List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(events)
}

// Get handles GET /events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.events.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("event", map[string]any{"id": c.Params("id")})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(event)
}

// Create handles POST /events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var event domain.Event
	if err := c.BodyParser(&event); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if event.EventName == "" || event.EventDescription == "" || event.EventStartDate == "" {
		return apperrors.NewValidationError("eventName, eventDescription, eventStartDate required", nil)
	}

	created, err := h.events.Create(c.UserContext(), &event)
	if err != nil {
		return apperrors.MapError(err)
	}

	c.Location("/events/" + created.ID)
	return c.Status(http.StatusCreated).JSON(created)
}

// Update handles PUT /events/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	var event domain.Event
	if err := c.BodyParser(&event); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if event.ID != c.Params("id") || event.EventName == "" || event.EventDescription == "" || event.EventStartDate == "" {
		return apperrors.NewValidationError("id mismatch or missing fields", nil)
	}

	if err := h.events.Update(c.UserContext(), &event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("event", map[string]any{"id": c.Params("id")})
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusOK)
}

// Delete handles DELETE /events/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	if err := h.events.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("event", map[string]any{"id": c.Params("id")})
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusOK)
}
