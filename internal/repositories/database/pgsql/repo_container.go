package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Application: newPgxApplicationRepository(dbPool),
		Note:        newPgxNoteRepository(dbPool),
		AccessLog:   newPgxAccessLogRepository(dbPool),
		Reviewer:    newPgxReviewerRepository(dbPool),
		APIKey:      newPgxAPIKeyRepository(dbPool),
	}
}
