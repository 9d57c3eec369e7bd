package models

// LoginRequest is the credentials payload forwarded to the user service.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Session is the upstream login response: the opaque bearer token plus the
// identity the dashboard stores for the lifetime of the browser session.
type Session struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName,omitempty"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}
