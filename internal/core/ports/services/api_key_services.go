package services

import (
	"context"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
)

// APIKeySvc manages pre-shared API keys for reviewer users.
type APIKeySvc interface {
	// CreateKey returns the raw key exactly once; only its hash is stored.
	CreateKey(ctx context.Context, userID, name string) (string, *domain.APIKey, error)
	ListKeys(ctx context.Context, userID string) ([]domain.APIKey, error)
	RevokeKey(ctx context.Context, userID, keyID string) error
	// ValidateKey resolves a raw key to its owning user ID and updates the
	// key's last-used timestamp as a side effect.
	ValidateKey(ctx context.Context, rawKey string) (string, error)
}
