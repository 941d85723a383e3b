package model

// LoginRequest represents a login request. The password is required by the
// contract but never verified; auth is a simulated placeholder.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the public-safe projection of a user returned by auth routes.
type AuthUser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// AuthResponse represents an authentication response. Token is a fabricated
// bearer token, not a real credential.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
