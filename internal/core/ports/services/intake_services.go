package services

import (
	"context"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	"github.com/meridianfs/client_onboarding_app/internal/core/validation"
	"github.com/meridianfs/client_onboarding_app/internal/dto"
)

// IntakeSvc orchestrates draft saving and the one-time submission of an
// application: validation, reference-number assignment, encoding, persistence
// and best-effort notification.
type IntakeSvc interface {
	// SaveDraft creates a draft on first call and updates it on subsequent
	// calls; updates require the session token handed out at creation.
	SaveDraft(ctx context.Context, req dto.SaveDraftRequest) (*dto.SaveDraftResponse, error)
	// Submit validates the full draft and persists it as submitted, exactly
	// once. A non-empty Violations return means nothing was persisted.
	Submit(ctx context.Context, req dto.SubmitApplicationRequest, meta domain.RequestMeta) (*dto.SubmissionReceipt, validation.Violations, error)
}
