package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/events"
	"github.com/spec-kit/event-registration/internal/repository"
)

// CustomerService coordinates customer CRUD on the resource service.
type CustomerService struct {
	customers  repository.CustomerRepository
	dispatcher events.Dispatcher
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository, dispatcher events.Dispatcher) *CustomerService {
	return &CustomerService{customers: customers, dispatcher: dispatcher}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create persists a new customer and announces it.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCustomerRegistered,
			Timestamp: time.Now(),
			Payload: events.CustomerRegisteredPayload{
				CustomerID: customer.ID,
				Email:      customer.Email,
			},
		})
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	return s.customers.Update(ctx, customer)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}
