package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/event-registration/internal/events"
	"github.com/spec-kit/event-registration/internal/repository"
)

// StartAvailabilityWorker keeps event seat counts in step with registrations:
// a new registration takes a seat, a deleted one frees it.
func StartAvailabilityWorker(dispatcher events.Dispatcher, eventRepo repository.EventRepository, logger *zap.Logger) {
	if dispatcher == nil || eventRepo == nil {
		return
	}

	dispatcher.Subscribe(events.EventRegistrationCreated, adjust(eventRepo, -1, logger))
	dispatcher.Subscribe(events.EventRegistrationDeleted, adjust(eventRepo, +1, logger))
}

func adjust(eventRepo repository.EventRepository, delta int, logger *zap.Logger) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.RegistrationPayload)
		if !ok {
			return nil
		}
		if err := eventRepo.AdjustAvailability(ctx, payload.EventID, delta); err != nil {
			logger.Warn("failed to adjust event availability",
				zap.String("event_id", payload.EventID),
				zap.Int("delta", delta),
				zap.Error(err))
		}
		return nil
	}
}
