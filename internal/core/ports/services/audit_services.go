package services

import (
	"context"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
)

// AuditSvc appends immutable access records. Record is best-effort: a logging
// failure must never fail the operation being audited, only surface in the
// operational log.
type AuditSvc interface {
	Record(ctx context.Context, subject, actorID, action string, meta domain.RequestMeta)
	ListForSubject(ctx context.Context, subject string) ([]domain.AccessLogEntry, error)
}
