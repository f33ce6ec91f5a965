package dto

import (
	"time"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
)

// CreateAPIKeyRequest names a new pre-shared key.
type CreateAPIKeyRequest struct {
	Name string `json:"name" binding:"required"`
}

// APIKeyResponse describes a key without its secret material.
type APIKeyResponse struct {
	KeyID      string     `json:"keyID"`
	Name       string     `json:"name"`
	IsActive   bool       `json:"isActive"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateAPIKeyResponse includes the raw key exactly once, at creation.
type CreateAPIKeyResponse struct {
	Key string `json:"key"`
	APIKeyResponse
}

// ListAPIKeysResponse wraps a reviewer's keys.
type ListAPIKeysResponse struct {
	Keys []APIKeyResponse `json:"keys"`
}

// ToAPIKeyResponse converts a domain key.
func ToAPIKeyResponse(k domain.APIKey) APIKeyResponse {
	return APIKeyResponse{
		KeyID:      k.KeyID,
		Name:       k.Name,
		IsActive:   k.IsActive,
		LastUsedAt: k.LastUsedAt,
		CreatedAt:  k.CreatedAt,
	}
}
