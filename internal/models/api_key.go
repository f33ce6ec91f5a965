package models

import "time"

// APIKey is a pre-shared key row. KeyHash is the SHA-256 hex of the raw key;
// the raw key itself is never stored.
type APIKey struct {
	KeyID      string     `json:"keyID" db:"key_id"`
	UserID     string     `json:"userID" db:"user_id"`
	Name       string     `json:"name" db:"name"`
	KeyHash    string     `json:"-" db:"key_hash"`
	IsActive   bool       `json:"isActive" db:"is_active"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty" db:"last_used_at"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}
