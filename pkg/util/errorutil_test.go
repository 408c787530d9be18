package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestToDomainError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("domain errors pass through unchanged", func(t *testing.T) {
		original := NewValidationError("name is required", map[string]any{"field": "name"})
		mapped := ToDomainError(original)
		assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
		assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
		assert.Equal(t, "name", mapped.Details["field"])
	})

	t.Run("wrapped domain errors are unwrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("looking up customer: %w", NewNotFound("Customer", nil))
		mapped := ToDomainError(wrapped)
		assert.Equal(t, "NOT_FOUND", mapped.Code)
		assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	})

	t.Run("missing documents map to not found", func(t *testing.T) {
		mapped := ToDomainError(mongo.ErrNoDocuments)
		assert.Equal(t, "NOT_FOUND", mapped.Code)
		assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	})

	t.Run("unknown errors map to internal", func(t *testing.T) {
		cause := errors.New("boom")
		mapped := ToDomainError(cause)
		assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
		assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
		assert.ErrorIs(t, mapped, cause)
	})
}

func TestDomainErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("without cause", func(t *testing.T) {
		err := NewUnauthorized("Authentication failed")
		assert.Equal(t, "Authentication failed", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewUpstreamUnavailable("resource service", cause)
		assert.Contains(t, err.Error(), "resource service unavailable")
		assert.Contains(t, err.Error(), "connection refused")
		assert.ErrorIs(t, err, cause)
	})
}

func TestErrorConstructors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"validation", NewValidationError("bad input", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"not found", NewNotFound("Event", nil), "NOT_FOUND", http.StatusNotFound},
		{"unauthorized", NewUnauthorized("nope"), "UNAUTHORIZED", http.StatusUnauthorized},
		{"conflict", NewConflict("duplicate email", nil), "CONFLICT", http.StatusConflict},
		{"upstream", NewUpstreamUnavailable("resource service", errors.New("x")), "UPSTREAM_UNAVAILABLE", http.StatusBadGateway},
		{"internal", NewInternalError(errors.New("x")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var de *DomainError
			require.ErrorAs(t, tc.err, &de)
			assert.Equal(t, tc.code, de.Code)
			assert.Equal(t, tc.status, de.HTTPStatus)
		})
	}
}
