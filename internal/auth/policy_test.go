package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/event-registration/internal/auth"
)

// Every resource-service route and its expected gate policy. Anything not in
// the allow-list must require authentication.
func TestResourceRoutePolicy(t *testing.T) {
	t.Parallel()
	policy := auth.ResourceRoutePolicy()

	routes := []struct {
		method string
		path   string
		bypass bool
	}{
		{"GET", "/", true},
		{"GET", "/health/live", true},
		{"GET", "/health/ready", true},
		{"GET", "/customers", true},
		{"POST", "/customers", true},

		{"GET", "/customers/abc", false},
		{"PUT", "/customers/abc", false},
		{"DELETE", "/customers/abc", false},
		{"PUT", "/customers", false},
		{"DELETE", "/customers", false},
		{"GET", "/events", false},
		{"POST", "/events", false},
		{"GET", "/events/abc", false},
		{"PUT", "/events/abc", false},
		{"DELETE", "/events/abc", false},
		{"GET", "/registrations", false},
		{"POST", "/registrations", false},
		{"GET", "/registrations/abc", false},
		{"PUT", "/registrations/abc", false},
		{"DELETE", "/registrations/abc", false},
		{"GET", "/registrations/customer/abc", false},
		{"GET", "/registrations/event/abc", false},

		// no prefix matching: near-misses stay closed
		{"GET", "/customers/", false},
		{"POST", "/", false},
		{"GET", "/unknown", false},
	}

	for _, route := range routes {
		assert.Equal(t, route.bypass, policy.IsBypassed(route.method, route.path),
			"%s %s", route.method, route.path)
	}
}

func TestRoutePolicyFailClosed(t *testing.T) {
	t.Parallel()
	policy := auth.NewRoutePolicy()
	assert.False(t, policy.IsBypassed("GET", "/"))

	policy.Bypass("GET", "/status")
	assert.True(t, policy.IsBypassed("GET", "/status"))
	assert.False(t, policy.IsBypassed("POST", "/status"))
}
