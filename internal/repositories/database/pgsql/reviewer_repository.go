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

type PgxReviewerRepository struct {
	db *pgxpool.Pool
}

func newPgxReviewerRepository(db *pgxpool.Pool) portsrepo.ReviewerRepository {
	return &PgxReviewerRepository{db: db}
}

var _ portsrepo.ReviewerRepository = (*PgxReviewerRepository)(nil)

const reviewerColumns = `user_id, email, name, role, password_hash, is_active, last_login_at, created_at, updated_at`

func (r *PgxReviewerRepository) FindByID(ctx context.Context, userID string) (*models.ReviewerUser, error) {
	query := `SELECT ` + reviewerColumns + ` FROM reviewer_users WHERE user_id = $1;`
	return r.scanOne(r.db.QueryRow(ctx, query, userID), userID)
}

func (r *PgxReviewerRepository) FindByEmail(ctx context.Context, email string) (*models.ReviewerUser, error) {
	query := `SELECT ` + reviewerColumns + ` FROM reviewer_users WHERE lower(email) = lower($1);`
	return r.scanOne(r.db.QueryRow(ctx, query, email), email)
}

func (r *PgxReviewerRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	query := `UPDATE reviewer_users SET last_login_at = $2, updated_at = $2 WHERE user_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, userID, at)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReviewerRepository) scanOne(row pgx.Row, key string) (*models.ReviewerUser, error) {
	var u models.ReviewerUser
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.Name,
		&u.Role,
		&u.PasswordHash,
		&u.IsActive,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reviewer user %s: %w", key, err)
	}
	return &u, nil
}
