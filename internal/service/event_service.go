package service

import (
	"context"

	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/repository"
)

// EventService coordinates event CRUD on the resource service.
type EventService struct {
	events repository.EventRepository
}

// NewEventService builds the service.
func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, event *domain.Event) error {
	return s.events.Update(ctx, event)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}
