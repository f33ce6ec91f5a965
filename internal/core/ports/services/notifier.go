package services

import (
	"context"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
)

// Notifier is the outbound notification sink. All calls are best-effort from
// the caller's perspective; a delivery failure never fails the submission.
type Notifier interface {
	// SubmissionReceived sends the submitter their reference number.
	SubmissionReceived(ctx context.Context, app *domain.Application) error
	// ReviewTeamAlert tells the review inbox a new submission arrived.
	ReviewTeamAlert(ctx context.Context, app *domain.Application) error
}
