package domain

import "time"

// ReviewerUser is a human back-office actor. Credentials are bcrypt hashes.
type ReviewerUser struct {
	UserID       string     `json:"userID"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}

// APIKey is a non-human principal owned by a reviewer user. Only the SHA-256
// hash of the key is ever stored; the raw key is shown once at creation.
type APIKey struct {
	KeyID      string     `json:"keyID"`
	UserID     string     `json:"userID"`
	Name       string     `json:"name"`
	KeyHash    string     `json:"-"`
	IsActive   bool       `json:"isActive"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	AuditFields
}

// Authentication methods resolved by the access controller.
const (
	AuthMethodBearer = "bearer"
	AuthMethodAPIKey = "api_key"
)

// Principal is the resolved identity behind an authenticated request. Both
// authentication methods collapse to the owning reviewer's user ID.
type Principal struct {
	UserID string `json:"userID"`
	Method string `json:"method"`
}
