package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spec-kit/event-registration/internal/domain"
	util "github.com/spec-kit/event-registration/pkg/util"
)

// ErrCustomerNotFound signals an email with no credential record.
var ErrCustomerNotFound = errors.New("customer not found")

// ResourceClient is the account service's view of the credential store,
// implemented as HTTP calls against the resource service's customer routes.
// Those routes are on the resource service's bypass list so no token is
// needed for these calls.
type ResourceClient struct {
	baseURL string
	httpc   *http.Client
}

// NewResourceClient builds a client for the given resource-service base URL.
func NewResourceClient(baseURL string, timeout time.Duration) *ResourceClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ResourceClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// CreateCustomer persists a new credential record and returns it with the
// storage id assigned.
func (c *ResourceClient) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	body, err := json.Marshal(customer)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/customers", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, util.NewUpstreamUnavailable("resource service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("failed to create customer: resource service returned %d", resp.StatusCode)
	}

	var created domain.Customer
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListCustomers fetches every credential record.
func (c *ResourceClient) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/customers", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, util.NewUpstreamUnavailable("resource service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to list customers: resource service returned %d", resp.StatusCode)
	}

	var customers []domain.Customer
	if err := json.NewDecoder(resp.Body).Decode(&customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// FindCustomerByEmail scans the full customer list for an exact,
// case-sensitive email match. The credential store exposes no lookup route,
// so the filter happens client-side.
func (c *ResourceClient) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	customers, err := c.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].Email == email {
			return &customers[i], nil
		}
	}
	return nil, ErrCustomerNotFound
}

// Ping checks the resource service's status route for readiness probes.
func (c *ResourceClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("resource service returned %d", resp.StatusCode)
	}
	return nil
}
