package repositories

import (
	"context"

	"github.com/meridianfs/client_onboarding_app/internal/models"
)

// NoteRepository defines persistence for append-only accounting notes.
type NoteRepository interface {
	AddNote(ctx context.Context, note *models.AccountingNote) error
	FindByApplicationID(ctx context.Context, applicationID string) ([]models.AccountingNote, error)
}
