package services

import (
	"context"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	"github.com/meridianfs/client_onboarding_app/internal/dto"
)

// ReviewSvc orchestrates reviewer actions against submitted applications.
// Every method requires a resolved reviewer identity and records exactly one
// audit entry.
type ReviewSvc interface {
	ListApplications(ctx context.Context, actorID string, meta domain.RequestMeta) (*dto.ListApplicationsResponse, error)
	GetApplication(ctx context.Context, actorID, applicationID string, meta domain.RequestMeta) (*dto.ApplicationDetailResponse, error)
	// PerformAction executes one action from the closed review action set.
	// Unknown action names fail with apperrors.ErrInvalidAction and perform no
	// mutation.
	PerformAction(ctx context.Context, actorID, applicationID string, req dto.ReviewActionRequest, meta domain.RequestMeta) (*dto.ReviewActionResponse, error)
	GetAuditTrail(ctx context.Context, actorID, applicationID string, meta domain.RequestMeta) (*dto.AuditTrailResponse, error)
}
