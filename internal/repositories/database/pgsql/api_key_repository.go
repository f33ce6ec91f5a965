package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridianfs/client_onboarding_app/internal/apperrors"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	"github.com/meridianfs/client_onboarding_app/internal/models"
)

type PgxAPIKeyRepository struct {
	db *pgxpool.Pool
}

func newPgxAPIKeyRepository(db *pgxpool.Pool) portsrepo.APIKeyRepository {
	return &PgxAPIKeyRepository{db: db}
}

var _ portsrepo.APIKeyRepository = (*PgxAPIKeyRepository)(nil)

const apiKeyColumns = `key_id, user_id, name, key_hash, is_active, last_used_at, created_at, updated_at`

func (r *PgxAPIKeyRepository) Create(ctx context.Context, key *models.APIKey) error {
	query := `
        INSERT INTO api_keys (` + apiKeyColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		key.KeyID,
		key.UserID,
		key.Name,
		key.KeyHash,
		key.IsActive,
		key.LastUsedAt,
		key.CreatedAt,
		key.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert API key: %w", err)
	}
	return nil
}

func (r *PgxAPIKeyRepository) FindByHash(ctx context.Context, keyHash string) (*models.APIKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE key_hash = $1;`

	var k models.APIKey
	err := r.db.QueryRow(ctx, query, keyHash).Scan(
		&k.KeyID,
		&k.UserID,
		&k.Name,
		&k.KeyHash,
		&k.IsActive,
		&k.LastUsedAt,
		&k.CreatedAt,
		&k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find API key by hash: %w", err)
	}
	return &k, nil
}

func (r *PgxAPIKeyRepository) FindByUserID(ctx context.Context, userID string) ([]models.APIKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query API keys: %w", err)
	}
	defer rows.Close()

	keys := []models.APIKey{}
	for rows.Next() {
		var k models.APIKey
		err := rows.Scan(
			&k.KeyID,
			&k.UserID,
			&k.Name,
			&k.KeyHash,
			&k.IsActive,
			&k.LastUsedAt,
			&k.CreatedAt,
			&k.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan API key row: %w", err)
		}
		keys = append(keys, k)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating API key rows: %w", rows.Err())
	}
	return keys, nil
}

// Deactivate is scoped to the owning user, so revoking an unowned key behaves
// exactly like revoking a missing one.
func (r *PgxAPIKeyRepository) Deactivate(ctx context.Context, keyID, userID string) error {
	query := `UPDATE api_keys SET is_active = FALSE, updated_at = $3 WHERE key_id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, keyID, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to deactivate API key: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAPIKeyRepository) UpdateLastUsed(ctx context.Context, keyID string, at time.Time) error {
	query := `UPDATE api_keys SET last_used_at = $2 WHERE key_id = $1;`
	if _, err := r.db.Exec(ctx, query, keyID, at); err != nil {
		return fmt.Errorf("failed to update API key last-used timestamp: %w", err)
	}
	return nil
}
