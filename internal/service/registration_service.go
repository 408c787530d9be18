package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/events"
	"github.com/spec-kit/event-registration/internal/repository"
)

// RegistrationService coordinates registration CRUD. Creation and deletion
// publish domain events so the availability worker can adjust event seat
// counts without coupling this service to the event repository.
type RegistrationService struct {
	registrations repository.RegistrationRepository
	dispatcher    events.Dispatcher
}

// NewRegistrationService builds the service.
func NewRegistrationService(registrations repository.RegistrationRepository, dispatcher events.Dispatcher) *RegistrationService {
	return &RegistrationService{registrations: registrations, dispatcher: dispatcher}
}

func (s *RegistrationService) List(ctx context.Context) ([]domain.Registration, error) {
	return s.registrations.List(ctx)
}

func (s *RegistrationService) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	return s.registrations.GetByID(ctx, id)
}

func (s *RegistrationService) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Registration, error) {
	return s.registrations.ListByCustomerID(ctx, customerID)
}

func (s *RegistrationService) ListByEventID(ctx context.Context, eventID string) ([]domain.Registration, error) {
	return s.registrations.ListByEventID(ctx, eventID)
}

func (s *RegistrationService) Create(ctx context.Context, registration *domain.Registration) (*domain.Registration, error) {
	if registration.Status == "" {
		registration.Status = string(domain.RegistrationStatusConfirmed)
	}
	if err := s.registrations.Create(ctx, registration); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventRegistrationCreated, registration)
	return registration, nil
}

func (s *RegistrationService) Update(ctx context.Context, registration *domain.Registration) error {
	return s.registrations.Update(ctx, registration)
}

func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	registration, err := s.registrations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.registrations.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventRegistrationDeleted, registration)
	return nil
}

func (s *RegistrationService) publish(ctx context.Context, eventType events.EventType, registration *domain.Registration) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload: events.RegistrationPayload{
			RegistrationID: registration.ID,
			CustomerID:     registration.CustomerID,
			EventID:        registration.EventID,
		},
	})
}
