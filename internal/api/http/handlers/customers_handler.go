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

// CustomersHandler exposes customer CRUD on the resource service.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// List handles GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.customers.List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(customers)
}

// Get handles GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	customer, err := h.customers.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("customer", map[string]any{"id": c.Params("id")})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(customer)
}

// Create handles POST /customers. The created document is returned so the
// account service learns the assigned storage id.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var customer domain.Customer
	if err := c.BodyParser(&customer); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if customer.Name == "" || customer.Email == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}

	created, err := h.customers.Create(c.UserContext(), &customer)
	if err != nil {
		return apperrors.MapError(err)
	}

	c.Location("/customers/" + created.ID)
	return c.Status(http.StatusCreated).JSON(created)
}

// Update handles PUT /customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	var customer domain.Customer
	if err := c.BodyParser(&customer); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if customer.ID != c.Params("id") || customer.Name == "" || customer.Email == "" {
		return apperrors.NewValidationError("id mismatch or missing fields", nil)
	}

	if err := h.customers.Update(c.UserContext(), &customer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("customer", map[string]any{"id": c.Params("id")})
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusOK)
}

// Delete handles DELETE /customers/:id.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	if err := h.customers.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("customer", map[string]any{"id": c.Params("id")})
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusOK)
}
