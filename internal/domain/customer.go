package domain

// Customer is the domain model for registered customers. The Password field
// always holds a bcrypt hash; plaintext never reaches this struct. The hash
// travels between the account and resource services on the credential-store
// routes but is never exposed to end clients.
type Customer struct {
	ID            string `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string `json:"name" bson:"name"`
	Email         string `json:"email" bson:"email"`
	Password      string `json:"password,omitempty" bson:"password"`
	CompanyName   string `json:"companyName,omitempty" bson:"companyName,omitempty"`
	Location      string `json:"location,omitempty" bson:"location,omitempty"`
	EmployeeCount int    `json:"employeeCount,omitempty" bson:"employeeCount,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	JobTitle      string `json:"jobTitle,omitempty" bson:"jobTitle,omitempty"`
	IsAdmin       bool   `json:"isAdmin" bson:"isAdmin"`
}
