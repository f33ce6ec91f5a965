package dto

import "time"

// LoginRequest is the reviewer email/password login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleVerifyRequest carries a Google ID token for SSO login.
type GoogleVerifyRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse returns the bearer token for the review API.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
