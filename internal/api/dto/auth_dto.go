package dto

import "time"

// RegisterRequest payload for self-service signup.
type RegisterRequest struct {
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	BaseLanguage   *string `json:"base_language,omitempty"`
	TargetLanguage *string `json:"target_language,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
