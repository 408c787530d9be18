package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spec-kit/event-registration/internal/auth"
	"github.com/spec-kit/event-registration/internal/client"
	"github.com/spec-kit/event-registration/internal/config"
	"github.com/spec-kit/event-registration/internal/domain"
)

// CredentialStore abstracts the resource service's customer routes, which the
// account service uses as its credential store.
type CredentialStore interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

// AccountService coordinates registration and login flows. Token issuance for
// both flows goes through the same TokenManager, so claims agree with the
// validator on the resource service as long as both share the configured
// secret.
type AccountService struct {
	store              CredentialStore
	tokenMgr           *auth.TokenManager
	bcryptCost         int
	enforceUniqueEmail bool
}

// NewAccountService builds the service.
func NewAccountService(cfg config.AuthConfig, store CredentialStore) *AccountService {
	return &AccountService{
		store:              store,
		tokenMgr:           auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLMinutes),
		bcryptCost:         cfg.BcryptCost,
		enforceUniqueEmail: cfg.EnforceUniqueEmail,
	}
}

// Register creates a credential record and mints a token for it. The token
// embeds the storage id assigned by the credential store.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*domain.Customer, string, time.Time, error) {
	if s.enforceUniqueEmail {
		_, err := s.store.FindCustomerByEmail(ctx, email)
		switch {
		case err == nil:
			return nil, "", time.Time{}, fmt.Errorf("Customer with email %s already exists", email)
		case !errors.Is(err, client.ErrCustomerNotFound):
			return nil, "", time.Time{}, err
		}
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	customer, err := s.store.CreateCustomer(ctx, &domain.Customer{
		Name:     name,
		Email:    email,
		Password: hash,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(auth.Identity{
		Subject:    customer.Email,
		Email:      customer.Email,
		CustomerID: customer.ID,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return customer, token, exp, nil
}

// Login authenticates a customer by email and password and mints a token.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Customer, string, time.Time, error) {
	customer, err := s.store.FindCustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, client.ErrCustomerNotFound) {
			return nil, "", time.Time{}, fmt.Errorf("Customer not found with email: %s", email)
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(customer.Password, password); err != nil {
		return nil, "", time.Time{}, errors.New("Invalid password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(auth.Identity{
		Subject:    customer.Email,
		Email:      customer.Email,
		CustomerID: customer.ID,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return customer, token, exp, nil
}

// CurrentUser resolves the identity behind validated claims. Tokens minted
// since the customerId claim was introduced carry the id directly; older
// tokens fall back to an email lookup against the credential store.
func (s *AccountService) CurrentUser(ctx context.Context, identity auth.Identity) (email, customerID string, err error) {
	if identity.CustomerID != "" {
		return identity.Email, identity.CustomerID, nil
	}
	customer, err := s.store.FindCustomerByEmail(ctx, identity.Email)
	if err != nil {
		return "", "", err
	}
	return customer.Email, customer.ID, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
