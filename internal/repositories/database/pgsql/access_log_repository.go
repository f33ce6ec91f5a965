package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	"github.com/meridianfs/client_onboarding_app/internal/models"
)

// PgxAccessLogRepository is insert-and-select only. There is deliberately no
// update or delete statement in this file.
type PgxAccessLogRepository struct {
	db *pgxpool.Pool
}

func newPgxAccessLogRepository(db *pgxpool.Pool) portsrepo.AccessLogRepository {
	return &PgxAccessLogRepository{db: db}
}

var _ portsrepo.AccessLogRepository = (*PgxAccessLogRepository)(nil)

func (r *PgxAccessLogRepository) Append(ctx context.Context, entry *models.AccessLogEntry) error {
	query := `
        INSERT INTO access_log (entry_id, subject, actor_id, action, ip, user_agent, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID,
		entry.Subject,
		entry.ActorID,
		entry.Action,
		entry.IP,
		entry.UserAgent,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append access log entry: %w", err)
	}
	return nil
}

func (r *PgxAccessLogRepository) FindBySubject(ctx context.Context, subject string) ([]models.AccessLogEntry, error) {
	query := `
        SELECT entry_id, subject, actor_id, action, ip, user_agent, created_at
        FROM access_log
        WHERE subject = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to query access log: %w", err)
	}
	defer rows.Close()

	entries := []models.AccessLogEntry{}
	for rows.Next() {
		var e models.AccessLogEntry
		if err := rows.Scan(&e.EntryID, &e.Subject, &e.ActorID, &e.Action, &e.IP, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan access log row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating access log rows: %w", rows.Err())
	}
	return entries, nil
}
