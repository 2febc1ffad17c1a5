// File: servizo/models/user.go
package models

// User represents a marketplace account. ProviderMode unlocks the
// service-creation UI; the backend still enforces authorization on its own.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Country      string `json:"country,omitempty"`
	Province     string `json:"province,omitempty"`
	ProviderMode bool   `json:"provider_mode"`
}

// AuthResponse is what the backend returns from both auth endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest carries the registration fields for POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Country  string `json:"country"`
	Province string `json:"province"`
}
