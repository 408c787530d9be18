package domain

// RegistrationStatus represents lifecycle states for a registration.
type RegistrationStatus string

const (
	RegistrationStatusConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationStatusCancelled RegistrationStatus = "CANCELLED"
)

// Registration links a customer to an event. EventName is denormalized for
// display so listing a customer's registrations needs no event lookup.
type Registration struct {
	ID         string `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID string `json:"customerId" bson:"customerId"`
	EventID    string `json:"eventId" bson:"eventId"`
	EventName  string `json:"eventName,omitempty" bson:"eventName,omitempty"`
	Status     string `json:"status,omitempty" bson:"status,omitempty"`
}
