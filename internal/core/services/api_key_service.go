package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/meridianfs/client_onboarding_app/internal/apperrors"
	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/models"
	"github.com/meridianfs/client_onboarding_app/internal/platform/logging"
	"github.com/meridianfs/client_onboarding_app/internal/utils"
)

// apiKeyPrefix marks raw keys so leaked values are recognisable in scanners
// and logs.
const apiKeyPrefix = "mfs_"

// apiKeyService implements portssvc.APIKeySvc.
type apiKeyService struct {
	keyRepo  portsrepo.APIKeyRepository
	userRepo portsrepo.ReviewerRepository
}

// NewAPIKeyService creates the API key manager.
func NewAPIKeyService(keyRepo portsrepo.APIKeyRepository, userRepo portsrepo.ReviewerRepository) portssvc.APIKeySvc {
	return &apiKeyService{keyRepo: keyRepo, userRepo: userRepo}
}

// CreateKey mints a new raw key, stores only its hash, and returns the raw
// value for the one and only time.
func (s *apiKeyService) CreateKey(ctx context.Context, userID, name string) (string, *domain.APIKey, error) {
	secret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	rawKey := apiKeyPrefix + secret

	now := time.Now()
	rec := &models.APIKey{
		KeyID:     uuid.NewString(),
		UserID:    userID,
		Name:      name,
		KeyHash:   utils.HashSecret(rawKey),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.keyRepo.Create(ctx, rec); err != nil {
		return "", nil, fmt.Errorf("failed to store API key: %w", err)
	}

	key := toDomainAPIKey(rec)
	return rawKey, &key, nil
}

// ListKeys returns all keys owned by a reviewer, hashes excluded.
func (s *apiKeyService) ListKeys(ctx context.Context, userID string) ([]domain.APIKey, error) {
	rows, err := s.keyRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	keys := make([]domain.APIKey, len(rows))
	for i := range rows {
		keys[i] = toDomainAPIKey(&rows[i])
	}
	return keys, nil
}

// RevokeKey deactivates a key the caller owns. Ownership is enforced in the
// repository query, so revoking someone else's key is indistinguishable from
// revoking a key that does not exist.
func (s *apiKeyService) RevokeKey(ctx context.Context, userID, keyID string) error {
	if err := s.keyRepo.Deactivate(ctx, keyID, userID); err != nil {
		return err
	}
	return nil
}

// ValidateKey resolves a raw key to its owning active reviewer. The key's
// last-used timestamp is refreshed best-effort.
func (s *apiKeyService) ValidateKey(ctx context.Context, rawKey string) (string, error) {
	rec, err := s.keyRepo.FindByHash(ctx, utils.HashSecret(rawKey))
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	if !rec.IsActive {
		return "", fmt.Errorf("%w: key is revoked", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindByID(ctx, rec.UserID)
	if err != nil || !user.IsActive {
		return "", apperrors.ErrUnauthorized
	}

	if err := s.keyRepo.UpdateLastUsed(ctx, rec.KeyID, time.Now()); err != nil {
		logging.FromCtx(ctx).Warn("Failed to update API key last-used timestamp",
			slog.String("key_id", rec.KeyID),
			slog.String("error", err.Error()),
		)
	}

	return rec.UserID, nil
}

func toDomainAPIKey(rec *models.APIKey) domain.APIKey {
	return domain.APIKey{
		KeyID:      rec.KeyID,
		UserID:     rec.UserID,
		Name:       rec.Name,
		IsActive:   rec.IsActive,
		LastUsedAt: rec.LastUsedAt,
		AuditFields: domain.AuditFields{
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		},
	}
}
