package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/event-registration/internal/events"
)

// StartAuditWorker writes an audit trail for customer and registration
// lifecycle events. Payloads carry record ids and emails only, never
// credential material.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil || logger == nil {
		return
	}

	dispatcher.Subscribe(events.EventCustomerRegistered, func(_ context.Context, event events.Event) error {
		if payload, ok := event.Payload.(events.CustomerRegisteredPayload); ok {
			logger.Info("customer registered",
				zap.String("customer_id", payload.CustomerID),
				zap.String("email", payload.Email))
		}
		return nil
	})
	dispatcher.Subscribe(events.EventRegistrationCreated, registrationAudit(logger, "registration created"))
	dispatcher.Subscribe(events.EventRegistrationDeleted, registrationAudit(logger, "registration deleted"))
}

func registrationAudit(logger *zap.Logger, message string) events.EventHandler {
	return func(_ context.Context, event events.Event) error {
		if payload, ok := event.Payload.(events.RegistrationPayload); ok {
			logger.Info(message,
				zap.String("registration_id", payload.RegistrationID),
				zap.String("customer_id", payload.CustomerID),
				zap.String("event_id", payload.EventID))
		}
		return nil
	}
}
