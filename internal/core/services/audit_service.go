package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/models"
	"github.com/meridianfs/client_onboarding_app/internal/platform/logging"
)

const unknownMeta = "unknown"

// auditService implements portssvc.AuditSvc over the access_log table.
type auditService struct {
	logRepo portsrepo.AccessLogRepository
}

// NewAuditService creates the audit trail service.
func NewAuditService(logRepo portsrepo.AccessLogRepository) portssvc.AuditSvc {
	return &auditService{logRepo: logRepo}
}

// Record appends one immutable entry. It never returns an error: an append
// failure is an operational problem, not a reason to fail the audited action,
// so it is logged and swallowed.
func (s *auditService) Record(ctx context.Context, subject, actorID, action string, meta domain.RequestMeta) {
	entry := &models.AccessLogEntry{
		EntryID:   uuid.NewString(),
		Subject:   subject,
		ActorID:   actorID,
		Action:    action,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		CreatedAt: time.Now(),
	}
	if entry.IP == "" {
		entry.IP = unknownMeta
	}
	if entry.UserAgent == "" {
		entry.UserAgent = unknownMeta
	}

	if err := s.logRepo.Append(ctx, entry); err != nil {
		logging.FromCtx(ctx).Error("Failed to append access log entry",
			slog.String("subject", subject),
			slog.String("actor_id", actorID),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}
}

// ListForSubject returns the trail for one subject, newest first.
func (s *auditService) ListForSubject(ctx context.Context, subject string) ([]domain.AccessLogEntry, error) {
	rows, err := s.logRepo.FindBySubject(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list access log entries: %w", err)
	}
	entries := make([]domain.AccessLogEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.AccessLogEntry{
			EntryID:   row.EntryID,
			Subject:   row.Subject,
			ActorID:   row.ActorID,
			Action:    row.Action,
			IP:        row.IP,
			UserAgent: row.UserAgent,
			CreatedAt: row.CreatedAt,
		}
	}
	return entries, nil
}
