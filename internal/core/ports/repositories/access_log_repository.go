package repositories

import (
	"context"

	"github.com/meridianfs/client_onboarding_app/internal/models"
)

// AccessLogRepository defines persistence for the append-only audit trail.
// Entries are never updated or deleted.
type AccessLogRepository interface {
	Append(ctx context.Context, entry *models.AccessLogEntry) error
	FindBySubject(ctx context.Context, subject string) ([]models.AccessLogEntry, error)
}
