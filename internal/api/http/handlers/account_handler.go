package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-registration/internal/api/dto"
	"github.com/spec-kit/event-registration/internal/service"
	apperrors "github.com/spec-kit/event-registration/pkg/util"
)

// AccountHandler exposes registration, login, and identity endpoints for the
// account service. Error bodies follow the {error, message} wire shape the
// frontend expects, so these endpoints bypass the shared error envelope.
type AccountHandler struct {
	accounts *service.AccountService
}

// NewAccountHandler constructs handler.
func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Login handles POST /token.
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error":   "Authentication failed",
			"message": "invalid payload",
		})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error":   "Authentication failed",
			"message": "username and password required",
		})
	}

	customer, token, _, err := h.accounts.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return failure(c, http.StatusUnauthorized, "Authentication failed", err)
	}

	return c.JSON(dto.JwtResponse{Token: token, Username: customer.Email, Email: customer.Email})
}

// Register handles POST /register.
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error":   "Registration failed",
			"message": "invalid payload",
		})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error":   "Registration failed",
			"message": "name, email, password required",
		})
	}

	customer, token, _, err := h.accounts.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return failure(c, http.StatusBadRequest, "Registration failed", err)
	}

	return c.Status(http.StatusCreated).JSON(dto.JwtResponse{
		Token:    token,
		Username: customer.Email,
		Email:    customer.Email,
	})
}

// Me handles GET /me. The account service runs no gate, so the bearer token
// is extracted and validated here.
func (h *AccountHandler) Me(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "No valid authorization header"})
	}

	claims, err := h.accounts.TokenManager().ParseToken(parts[1])
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	email, customerID, err := h.accounts.CurrentUser(c.UserContext(), claims.Identity())
	if err != nil {
		if status, ok := upstreamStatus(err); ok {
			return c.Status(status).JSON(fiber.Map{"error": "Failed to get user info"})
		}
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Failed to get user info"})
	}

	return c.JSON(dto.MeResponse{Email: email, CustomerID: customerID})
}

// failure writes the {error, message} wire shape. Server-side failures such
// as an unreachable credential store keep their 5xx status and a sanitized
// message instead of being reported as a credentials problem.
func failure(c *fiber.Ctx, status int, label string, err error) error {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) && domainErr.HTTPStatus >= http.StatusInternalServerError {
		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
			"error":   label,
			"message": domainErr.Message,
		})
	}
	return c.Status(status).JSON(fiber.Map{"error": label, "message": err.Error()})
}

func upstreamStatus(err error) (int, bool) {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) && domainErr.HTTPStatus >= http.StatusInternalServerError {
		return domainErr.HTTPStatus, true
	}
	return 0, false
}
