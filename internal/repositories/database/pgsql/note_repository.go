package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	"github.com/meridianfs/client_onboarding_app/internal/models"
)

type PgxNoteRepository struct {
	db *pgxpool.Pool
}

func newPgxNoteRepository(db *pgxpool.Pool) portsrepo.NoteRepository {
	return &PgxNoteRepository{db: db}
}

var _ portsrepo.NoteRepository = (*PgxNoteRepository)(nil)

func (r *PgxNoteRepository) AddNote(ctx context.Context, note *models.AccountingNote) error {
	query := `
        INSERT INTO application_notes (note_id, application_id, note, created_by, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		note.NoteID,
		note.ApplicationID,
		note.Note,
		note.CreatedBy,
		note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

func (r *PgxNoteRepository) FindByApplicationID(ctx context.Context, applicationID string) ([]models.AccountingNote, error) {
	query := `
        SELECT note_id, application_id, note, created_by, created_at
        FROM application_notes
        WHERE application_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := []models.AccountingNote{}
	for rows.Next() {
		var n models.AccountingNote
		if err := rows.Scan(&n.NoteID, &n.ApplicationID, &n.Note, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, n)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", rows.Err())
	}
	return notes, nil
}
