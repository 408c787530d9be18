package dto

// LoginRequest is the payload for POST /token. Username carries the email
// address, mirroring the frontend's login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// JwtResponse is returned by both /token and /register.
type JwtResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MeResponse is returned by GET /me.
type MeResponse struct {
	Email      string `json:"email"`
	CustomerID string `json:"customerId"`
}
