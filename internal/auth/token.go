package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Typed validation failures. The gate maps these onto its rejection responses,
// so every reason a token can be refused is enumerated here.
var (
	ErrMissingToken   = errors.New("missing token")
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("invalid token signature")
	ErrExpiredToken   = errors.New("token expired")
)

// Identity is the subject of a token. CustomerID may be empty for tokens
// minted before the credential record id was known.
type Identity struct {
	Subject    string
	Email      string
	CustomerID string
}

// Claims describes the JWT payload. Subject doubles as the email address.
type Claims struct {
	Email      string `json:"email"`
	CustomerID string `json:"customerId,omitempty"`
	jwt.RegisteredClaims
}

// Identity converts validated claims back into the identity they encode.
func (c *Claims) Identity() Identity {
	return Identity{Subject: c.Subject, Email: c.Email, CustomerID: c.CustomerID}
}

// TokenManager issues and validates JWT tokens. Both services must be built
// with the same secret or tokens minted by one are rejected by the other.
// Safe for concurrent use; the secret is read-only after construction.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// GenerateToken builds and signs a JWT for the identity.
func (tm *TokenManager) GenerateToken(identity Identity) (string, time.Time, error) {
	if identity.Subject == "" || identity.Email == "" {
		return "", time.Time{}, errors.New("identity requires subject and email")
	}

	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Email:      identity.Email,
		CustomerID: identity.CustomerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates the signature and expiry, returning the claims or one
// of the typed failures above. It never panics on hostile input.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrBadSignature
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		default:
			return nil, ErrMalformedToken
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrMalformedToken
	}
	return claims, nil
}
