package domain

// Event is a bookable event. EventAvailability counts remaining seats and is
// adjusted by the availability worker as registrations come and go.
type Event struct {
	ID                string `json:"id,omitempty" bson:"_id,omitempty"`
	EventName         string `json:"eventName" bson:"eventName"`
	EventDescription  string `json:"eventDescription" bson:"eventDescription"`
	EventAvailability int    `json:"eventAvailability" bson:"eventAvailability"`
	EventStartDate    string `json:"eventStartDate" bson:"eventStartDate"`
}
