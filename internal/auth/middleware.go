package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "auth_identity"

// Middleware is the authentication gate in front of the resource service.
// Per request it either bypasses (allow-listed route), rejects with 401
// before any downstream handler runs, or attaches the validated identity.
type Middleware struct {
	tokens *TokenManager
	policy *RoutePolicy
}

// NewMiddleware constructs the gate.
func NewMiddleware(tokens *TokenManager, policy *RoutePolicy) *Middleware {
	return &Middleware{tokens: tokens, policy: policy}
}

// Handle enforces the route policy and bearer-token validation.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	if m.policy.IsBypassed(c.Method(), c.Path()) {
		return c.Next()
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return reject(c, "Authorization header is missing or invalid")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return reject(c, "Authorization header is missing or invalid")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return reject(c, err.Error())
	}

	c.Locals(identityKey, claims.Identity())
	return c.Next()
}

// reject short-circuits the request; the downstream handler never runs.
func reject(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": message})
}

// IdentityFromContext retrieves the authenticated identity, if any.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return Identity{}, false
	}
	identity, ok := val.(Identity)
	return identity, ok
}
