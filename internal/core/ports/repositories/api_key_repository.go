package repositories

import (
	"context"
	"time"

	"github.com/meridianfs/client_onboarding_app/internal/models"
)

// APIKeyRepository defines persistence for pre-shared API keys. Lookup is by
// key hash; the raw key never reaches this layer.
type APIKeyRepository interface {
	Create(ctx context.Context, key *models.APIKey) error
	FindByHash(ctx context.Context, keyHash string) (*models.APIKey, error)
	FindByUserID(ctx context.Context, userID string) ([]models.APIKey, error)
	// Deactivate clears the active flag; the key is rejected on the very next
	// authentication attempt.
	Deactivate(ctx context.Context, keyID, userID string) error
	UpdateLastUsed(ctx context.Context, keyID string, at time.Time) error
}
