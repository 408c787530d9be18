package auth_test

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-registration/internal/auth"
)

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &auth.Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()
	tm := auth.NewTokenManager("test-secret", 60)

	t.Run("round trip preserves identity", func(t *testing.T) {
		identity := auth.Identity{Subject: "a@x.com", Email: "a@x.com", CustomerID: "cust-1"}
		token, exp, err := tm.GenerateToken(identity)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.True(t, exp.After(time.Now()))

		claims, err := tm.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, identity, claims.Identity())
	})

	t.Run("customer id claim is optional", func(t *testing.T) {
		token, _, err := tm.GenerateToken(auth.Identity{Subject: "b@x.com", Email: "b@x.com"})
		require.NoError(t, err)

		claims, err := tm.ParseToken(token)
		require.NoError(t, err)
		assert.Empty(t, claims.CustomerID)
	})

	t.Run("rejects empty subject", func(t *testing.T) {
		_, _, err := tm.GenerateToken(auth.Identity{Email: "a@x.com"})
		require.Error(t, err)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, _, err := tm.GenerateToken(auth.Identity{Subject: "a@x.com"})
		require.Error(t, err)
	})
}

func TestParseToken(t *testing.T) {
	t.Parallel()
	tm := auth.NewTokenManager("test-secret", 60)

	t.Run("empty token", func(t *testing.T) {
		_, err := tm.ParseToken("")
		assert.ErrorIs(t, err, auth.ErrMissingToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := tm.ParseToken("not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrMalformedToken)
	})

	t.Run("token signed with different key fails cross-validation", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", 60)
		token, _, err := other.GenerateToken(auth.Identity{Subject: "a@x.com", Email: "a@x.com"})
		require.NoError(t, err)

		_, err = tm.ParseToken(token)
		assert.ErrorIs(t, err, auth.ErrBadSignature)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signedToken(t, "test-secret", time.Now().Add(-time.Hour))
		_, err := tm.ParseToken(token)
		assert.ErrorIs(t, err, auth.ErrExpiredToken)
	})

	t.Run("expiry beats otherwise valid signature", func(t *testing.T) {
		token := signedToken(t, "test-secret", time.Now().Add(-time.Second))

		// Signature verifies, expiry alone must reject.
		_, err := tm.ParseToken(token)
		assert.ErrorIs(t, err, auth.ErrExpiredToken)
	})

	t.Run("any payload mutation invalidates the token", func(t *testing.T) {
		token, _, err := tm.GenerateToken(auth.Identity{Subject: "a@x.com", Email: "a@x.com"})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)

		payload := parts[1]
		for i := 0; i < len(payload); i++ {
			mutated := []byte(payload)
			if mutated[i] == 'A' {
				mutated[i] = 'B'
			} else {
				mutated[i] = 'A'
			}
			tampered := parts[0] + "." + string(mutated) + "." + parts[2]

			_, err := tm.ParseToken(tampered)
			require.Error(t, err, "mutation at index %d must not validate", i)
			assert.True(t,
				err == auth.ErrBadSignature || err == auth.ErrMalformedToken,
				"mutation at index %d yielded unexpected error %v", i, err)
		}
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		// alg=none tokens must never validate.
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tm.ParseToken(unsigned)
		require.Error(t, err)
	})
}

func TestParseTokenConcurrent(t *testing.T) {
	t.Parallel()
	tm := auth.NewTokenManager("test-secret", 60)
	token, _, err := tm.GenerateToken(auth.Identity{Subject: "a@x.com", Email: "a@x.com"})
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				claims, err := tm.ParseToken(token)
				if err != nil || claims.Subject != "a@x.com" {
					t.Error("concurrent validation failed")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
