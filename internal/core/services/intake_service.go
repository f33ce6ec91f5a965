package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/meridianfs/client_onboarding_app/internal/apperrors"
	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/core/validation"
	"github.com/meridianfs/client_onboarding_app/internal/dto"
	"github.com/meridianfs/client_onboarding_app/internal/platform/logging"
	"github.com/meridianfs/client_onboarding_app/internal/utils"
)

// SubmitterActorID is the audit actor recorded for the submission event
// itself, which has no reviewer identity behind it.
const SubmitterActorID = "submitter"

// intakeService implements portssvc.IntakeSvc.
type intakeService struct {
	appRepo    portsrepo.ApplicationRepository
	codec      *ApplicationCodec
	notifier   portssvc.Notifier
	audit      portssvc.AuditSvc
	analytics  *utils.AnalyticsClient
	programTag string
}

// NewIntakeService wires the intake pipeline.
func NewIntakeService(
	appRepo portsrepo.ApplicationRepository,
	codec *ApplicationCodec,
	notifier portssvc.Notifier,
	audit portssvc.AuditSvc,
	analytics *utils.AnalyticsClient,
	programTag string,
) portssvc.IntakeSvc {
	return &intakeService{
		appRepo:    appRepo,
		codec:      codec,
		notifier:   notifier,
		audit:      audit,
		analytics:  analytics,
		programTag: programTag,
	}
}

// SaveDraft creates or updates an unsubmitted application. The session token
// returned on the creating save is the only credential that permits later
// draft writes.
func (s *intakeService) SaveDraft(ctx context.Context, req dto.SaveDraftRequest) (*dto.SaveDraftResponse, error) {
	draft := req.ToDomainApplication()
	rec, err := s.codec.ToRecord(&draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}
	rec.ApplicantName = ApplicantDisplayName(&draft)
	rec.AccountingStatus = domain.StatusPendingReview

	if req.DraftID == "" {
		sessionToken, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session token: %w", err)
		}
		rec.ApplicationID = uuid.NewString()
		rec.SessionTokenHash = utils.HashSecret(sessionToken)
		rec.CreatedAt = time.Now()
		if err := s.appRepo.CreateDraft(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to create draft: %w", err)
		}
		return &dto.SaveDraftResponse{ApplicationID: rec.ApplicationID, SessionToken: sessionToken}, nil
	}

	existing, err := s.appRepo.FindByID(ctx, req.DraftID)
	if err != nil {
		return nil, err
	}
	if existing.IsSubmitted {
		return nil, apperrors.ErrAlreadySubmitted
	}
	if !utils.CompareSecretHash(req.SessionToken, existing.SessionTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	rec.ApplicationID = existing.ApplicationID
	rec.SessionTokenHash = existing.SessionTokenHash
	rec.CreatedAt = existing.CreatedAt
	if err := s.appRepo.UpdateDraft(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	return &dto.SaveDraftResponse{ApplicationID: rec.ApplicationID}, nil
}

// Submit validates and persists the final submission, then fires the
// best-effort side effects: submitter receipt, review-team alert, audit entry
// and an analytics event. None of those can fail the submission itself.
func (s *intakeService) Submit(ctx context.Context, req dto.SubmitApplicationRequest, meta domain.RequestMeta) (*dto.SubmissionReceipt, validation.Violations, error) {
	draft := req.ToDomainApplication()

	if violations := validation.ValidateSubmission(draft); len(violations) > 0 {
		return nil, violations, nil
	}

	now := time.Now()
	draft.IsSubmitted = true
	draft.AccountingStatus = domain.StatusPendingReview
	draft.ReferenceNumber = utils.BuildReferenceNumber(s.programTag)
	draft.SubmittedAt = &now

	rec, err := s.codec.ToRecord(&draft)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode application: %w", err)
	}
	rec.ApplicantName = ApplicantDisplayName(&draft)
	rec.ReferenceNumber = draft.ReferenceNumber
	rec.AccountingStatus = draft.AccountingStatus
	rec.IsSubmitted = true
	rec.SubmittedAt = draft.SubmittedAt

	if req.DraftID != "" {
		existing, err := s.appRepo.FindByID(ctx, req.DraftID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		if existing != nil {
			if existing.IsSubmitted {
				return nil, nil, apperrors.ErrAlreadySubmitted
			}
			if !utils.CompareSecretHash(req.SessionToken, existing.SessionTokenHash) {
				return nil, nil, apperrors.ErrUnauthorized
			}
			rec.ApplicationID = existing.ApplicationID
			rec.SessionTokenHash = existing.SessionTokenHash
			rec.CreatedAt = existing.CreatedAt
		}
	}
	if rec.ApplicationID == "" {
		rec.ApplicationID = uuid.NewString()
		rec.CreatedAt = now
	}
	draft.ID = rec.ApplicationID

	if err := s.appRepo.Submit(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("failed to persist submission: %w", err)
	}

	// The record is now the source of truth; everything below is best-effort.
	logger := logging.FromCtx(ctx)
	if err := s.notifier.SubmissionReceived(ctx, &draft); err != nil {
		logger.Error("Failed to send submission receipt", slog.String("application_id", draft.ID), slog.String("error", err.Error()))
	}
	if err := s.notifier.ReviewTeamAlert(ctx, &draft); err != nil {
		logger.Error("Failed to alert review team", slog.String("application_id", draft.ID), slog.String("error", err.Error()))
	}
	s.audit.Record(ctx, draft.ID, SubmitterActorID, domain.ActionSubmitApplication, meta)
	s.analytics.Enqueue(draft.ID, "application_submitted", map[string]any{
		"entity_type":      string(draft.EntityType),
		"reference_number": draft.ReferenceNumber,
	})

	return &dto.SubmissionReceipt{
		ApplicationID:   draft.ID,
		ReferenceNumber: draft.ReferenceNumber,
	}, nil, nil
}
