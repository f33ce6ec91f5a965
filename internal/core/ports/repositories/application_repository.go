package repositories

import (
	"context"

	"github.com/meridianfs/client_onboarding_app/internal/models"
)

// ApplicationRepository defines persistence operations for applications.
// Drafts are written by the intake surface; review-state updates come from the
// review surface and are a single record update per action.
type ApplicationRepository interface {
	CreateDraft(ctx context.Context, app *models.Application) error
	UpdateDraft(ctx context.Context, app *models.Application) error
	// Submit persists the full record and flips is_submitted exactly once.
	// It fails with apperrors.ErrAlreadySubmitted when the row is already
	// submitted.
	Submit(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, applicationID string) (*models.Application, error)
	// ListSubmitted returns submitted applications newest-first with summary
	// fields only.
	ListSubmitted(ctx context.Context) ([]models.ApplicationSummary, error)
	// UpdateReviewState sets the accounting review fields in one update. A nil
	// status leaves accounting_status untouched (mark_reviewed).
	UpdateReviewState(ctx context.Context, applicationID string, status *string, reviewedBy string) error
}
