package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meridianfs/client_onboarding_app/internal/apperrors"
	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/dto"
	"github.com/meridianfs/client_onboarding_app/internal/models"
	"github.com/meridianfs/client_onboarding_app/internal/platform/logging"
)

// reviewService implements portssvc.ReviewSvc. Every operation assumes the
// caller's identity was already resolved by the access controller; each one
// appends exactly one audit entry on success.
type reviewService struct {
	appRepo  portsrepo.ApplicationRepository
	noteRepo portsrepo.NoteRepository
	codec    *ApplicationCodec
	audit    portssvc.AuditSvc
	notifier portssvc.Notifier
}

// NewReviewService wires the review workflow.
func NewReviewService(
	appRepo portsrepo.ApplicationRepository,
	noteRepo portsrepo.NoteRepository,
	codec *ApplicationCodec,
	audit portssvc.AuditSvc,
	notifier portssvc.Notifier,
) portssvc.ReviewSvc {
	return &reviewService{
		appRepo:  appRepo,
		noteRepo: noteRepo,
		codec:    codec,
		audit:    audit,
		notifier: notifier,
	}
}

// ListApplications returns submitted applications newest-first, summary fields
// only.
func (s *reviewService) ListApplications(ctx context.Context, actorID string, meta domain.RequestMeta) (*dto.ListApplicationsResponse, error) {
	summaries, err := s.appRepo.ListSubmitted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	s.audit.Record(ctx, domain.SubjectApplicationList, actorID, domain.ActionListApplications, meta)

	resp := &dto.ListApplicationsResponse{Applications: make([]dto.ApplicationSummaryResponse, len(summaries))}
	for i, summary := range summaries {
		resp.Applications[i] = dto.ToApplicationSummaryResponse(summary)
	}
	return resp, nil
}

// GetApplication returns the full decrypted view plus notes. Protected fields
// that fail to decrypt come back as inline placeholders, never as a whole-page
// failure.
func (s *reviewService) GetApplication(ctx context.Context, actorID, applicationID string, meta domain.RequestMeta) (*dto.ApplicationDetailResponse, error) {
	rec, err := s.fetchSubmitted(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	app, failedFields := s.codec.FromRecord(rec)
	if len(failedFields) > 0 {
		logging.FromCtx(ctx).Error("Some application fields failed to decrypt",
			slog.String("application_id", applicationID),
			slog.String("fields", strings.Join(failedFields, ",")),
		)
	}

	notes, err := s.noteRepo.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	s.audit.Record(ctx, applicationID, actorID, domain.ActionViewApplication, meta)

	resp := &dto.ApplicationDetailResponse{Application: *app, Notes: make([]dto.NoteResponse, len(notes))}
	for i, note := range notes {
		resp.Notes[i] = dto.NoteResponse{
			NoteID:    note.NoteID,
			Note:      note.Note,
			CreatedBy: note.CreatedBy,
			CreatedAt: note.CreatedAt,
		}
	}
	return resp, nil
}

// PerformAction executes one action from the closed review action set.
// `accounting_reviewed` only ever moves false -> true; the accounting status
// sub-state can keep changing afterwards.
func (s *reviewService) PerformAction(ctx context.Context, actorID, applicationID string, req dto.ReviewActionRequest, meta domain.RequestMeta) (*dto.ReviewActionResponse, error) {
	rec, err := s.fetchSubmitted(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReviewActionResponse{ApplicationID: applicationID, Action: req.Action}

	switch req.Action {
	case domain.ActionApprove:
		status := domain.StatusApproved
		if err := s.appRepo.UpdateReviewState(ctx, applicationID, &status, actorID); err != nil {
			return nil, fmt.Errorf("failed to approve application: %w", err)
		}
		if req.Notes != "" {
			if err := s.addNote(ctx, applicationID, actorID, req.Notes); err != nil {
				return nil, err
			}
		}
		resp.AccountingStatus = status

	case domain.ActionReject:
		if strings.TrimSpace(req.Reason) == "" {
			return nil, fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
		}
		status := domain.StatusAdditionalInfo
		if err := s.appRepo.UpdateReviewState(ctx, applicationID, &status, actorID); err != nil {
			return nil, fmt.Errorf("failed to reject application: %w", err)
		}
		if err := s.addNote(ctx, applicationID, actorID, req.Reason); err != nil {
			return nil, err
		}
		resp.AccountingStatus = status

	case domain.ActionUpdateStatus:
		if strings.TrimSpace(req.Status) == "" {
			return nil, fmt.Errorf("%w: a status value is required", apperrors.ErrValidation)
		}
		status := req.Status
		if err := s.appRepo.UpdateReviewState(ctx, applicationID, &status, actorID); err != nil {
			return nil, fmt.Errorf("failed to update status: %w", err)
		}
		if req.Notes != "" {
			if err := s.addNote(ctx, applicationID, actorID, req.Notes); err != nil {
				return nil, err
			}
		}
		resp.AccountingStatus = status

	case domain.ActionAddNotes:
		if strings.TrimSpace(req.Notes) == "" {
			return nil, fmt.Errorf("%w: note text is required", apperrors.ErrValidation)
		}
		if err := s.addNote(ctx, applicationID, actorID, req.Notes); err != nil {
			return nil, err
		}
		resp.AccountingStatus = rec.AccountingStatus

	case domain.ActionMarkReviewed:
		if err := s.appRepo.UpdateReviewState(ctx, applicationID, nil, actorID); err != nil {
			return nil, fmt.Errorf("failed to mark application reviewed: %w", err)
		}
		resp.AccountingStatus = rec.AccountingStatus

	case domain.ActionResendNotification:
		app, _ := s.codec.FromRecord(rec)
		if err := s.notifier.SubmissionReceived(ctx, app); err != nil {
			// Reported to the caller, but the application is untouched.
			return nil, fmt.Errorf("failed to resend notification: %w", err)
		}
		resp.AccountingStatus = rec.AccountingStatus

	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAction, req.Action)
	}

	s.audit.Record(ctx, applicationID, actorID, req.Action, meta)
	return resp, nil
}

// GetAuditTrail returns the access trail for one application.
func (s *reviewService) GetAuditTrail(ctx context.Context, actorID, applicationID string, meta domain.RequestMeta) (*dto.AuditTrailResponse, error) {
	if _, err := s.fetchSubmitted(ctx, applicationID); err != nil {
		return nil, err
	}

	entries, err := s.audit.ListForSubject(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, applicationID, actorID, domain.ActionViewAuditTrail, meta)

	resp := &dto.AuditTrailResponse{Entries: make([]dto.AccessLogEntryResponse, len(entries))}
	for i, entry := range entries {
		resp.Entries[i] = dto.ToAccessLogEntryResponse(entry)
	}
	return resp, nil
}

// fetchSubmitted loads an application and hides drafts from the review
// surface entirely.
func (s *reviewService) fetchSubmitted(ctx context.Context, applicationID string) (*models.Application, error) {
	rec, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !rec.IsSubmitted {
		return nil, apperrors.ErrNotFound
	}
	return rec, nil
}

func (s *reviewService) addNote(ctx context.Context, applicationID, actorID, text string) error {
	note := &models.AccountingNote{
		NoteID:        uuid.NewString(),
		ApplicationID: applicationID,
		Note:          text,
		CreatedBy:     actorID,
		CreatedAt:     time.Now(),
	}
	if err := s.noteRepo.AddNote(ctx, note); err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	return nil
}
