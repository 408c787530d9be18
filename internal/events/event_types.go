package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRegistrationCreated EventType = "registration_created"
	EventRegistrationDeleted EventType = "registration_deleted"
	EventCustomerRegistered  EventType = "customer_registered"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RegistrationPayload accompanies registration lifecycle events.
type RegistrationPayload struct {
	RegistrationID string `json:"registration_id"`
	CustomerID     string `json:"customer_id"`
	EventID        string `json:"event_id"`
}

// CustomerRegisteredPayload accompanies new customer records. The email is
// included for audit logging; no credential material ever is.
type CustomerRegisteredPayload struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
}
