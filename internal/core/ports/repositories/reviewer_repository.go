package repositories

import (
	"context"
	"time"

	"github.com/meridianfs/client_onboarding_app/internal/models"
)

// ReviewerRepository defines persistence for back-office reviewer users.
type ReviewerRepository interface {
	FindByID(ctx context.Context, userID string) (*models.ReviewerUser, error)
	FindByEmail(ctx context.Context, email string) (*models.ReviewerUser, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
