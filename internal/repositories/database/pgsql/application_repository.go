// Package pgsql implements the repository ports over a pgx connection pool.
// Section payloads live in jsonb columns; pgx handles the (un)marshalling.
package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridianfs/client_onboarding_app/internal/apperrors"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	"github.com/meridianfs/client_onboarding_app/internal/models"
)

type PgxApplicationRepository struct {
	db *pgxpool.Pool
}

func newPgxApplicationRepository(db *pgxpool.Pool) portsrepo.ApplicationRepository {
	return &PgxApplicationRepository{db: db}
}

var _ portsrepo.ApplicationRepository = (*PgxApplicationRepository)(nil)

const applicationColumns = `
	application_id, reference_number, entity_type, applicant_name,
	entity_details, primary_contact, has_secondary_contact, secondary_contact,
	beneficial_owners, adviser, investment_profile, bank_details, consents, signatures,
	is_submitted, accounting_status, accounting_reviewed, accounting_reviewed_at, accounting_reviewed_by,
	session_token_hash, created_at, submitted_at`

func (r *PgxApplicationRepository) CreateDraft(ctx context.Context, app *models.Application) error {
	query := `
        INSERT INTO applications (` + applicationColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
    `
	_, err := r.db.Exec(ctx, query, applicationArgs(app)...)
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}
	return nil
}

func (r *PgxApplicationRepository) UpdateDraft(ctx context.Context, app *models.Application) error {
	query := `
        UPDATE applications SET
            entity_type = $2, applicant_name = $3,
            entity_details = $4, primary_contact = $5, has_secondary_contact = $6, secondary_contact = $7,
            beneficial_owners = $8, adviser = $9, investment_profile = $10, bank_details = $11,
            consents = $12, signatures = $13
        WHERE application_id = $1 AND is_submitted = FALSE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		app.ApplicationID,
		app.EntityType,
		app.ApplicantName,
		app.EntityDetails,
		app.PrimaryContact,
		app.HasSecondaryContact,
		app.SecondaryContact,
		app.BeneficialOwners,
		app.Adviser,
		app.InvestmentProfile,
		app.BankDetails,
		app.Consents,
		app.Signatures,
	)
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Submit upserts the full record and flips is_submitted. The conflict arm is
// guarded so an already-submitted row is never rewritten; zero affected rows
// means exactly that.
func (r *PgxApplicationRepository) Submit(ctx context.Context, app *models.Application) error {
	query := `
        INSERT INTO applications (` + applicationColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
        ON CONFLICT (application_id) DO UPDATE SET
            reference_number = EXCLUDED.reference_number,
            entity_type = EXCLUDED.entity_type,
            applicant_name = EXCLUDED.applicant_name,
            entity_details = EXCLUDED.entity_details,
            primary_contact = EXCLUDED.primary_contact,
            has_secondary_contact = EXCLUDED.has_secondary_contact,
            secondary_contact = EXCLUDED.secondary_contact,
            beneficial_owners = EXCLUDED.beneficial_owners,
            adviser = EXCLUDED.adviser,
            investment_profile = EXCLUDED.investment_profile,
            bank_details = EXCLUDED.bank_details,
            consents = EXCLUDED.consents,
            signatures = EXCLUDED.signatures,
            is_submitted = TRUE,
            accounting_status = EXCLUDED.accounting_status,
            submitted_at = EXCLUDED.submitted_at
        WHERE applications.is_submitted = FALSE;
    `
	cmdTag, err := r.db.Exec(ctx, query, applicationArgs(app)...)
	if err != nil {
		return fmt.Errorf("failed to persist submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlreadySubmitted
	}
	return nil
}

func (r *PgxApplicationRepository) FindByID(ctx context.Context, applicationID string) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE application_id = $1;`

	var app models.Application
	err := r.db.QueryRow(ctx, query, applicationID).Scan(
		&app.ApplicationID,
		&app.ReferenceNumber,
		&app.EntityType,
		&app.ApplicantName,
		&app.EntityDetails,
		&app.PrimaryContact,
		&app.HasSecondaryContact,
		&app.SecondaryContact,
		&app.BeneficialOwners,
		&app.Adviser,
		&app.InvestmentProfile,
		&app.BankDetails,
		&app.Consents,
		&app.Signatures,
		&app.IsSubmitted,
		&app.AccountingStatus,
		&app.AccountingReviewed,
		&app.AccountingReviewedAt,
		&app.AccountingReviewedBy,
		&app.SessionTokenHash,
		&app.CreatedAt,
		&app.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application %s: %w", applicationID, err)
	}
	return &app, nil
}

func (r *PgxApplicationRepository) ListSubmitted(ctx context.Context) ([]models.ApplicationSummary, error) {
	query := `
        SELECT application_id, reference_number, entity_type, applicant_name,
               accounting_status, accounting_reviewed, submitted_at
        FROM applications
        WHERE is_submitted = TRUE
        ORDER BY submitted_at DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	summaries := []models.ApplicationSummary{}
	for rows.Next() {
		var s models.ApplicationSummary
		err := rows.Scan(
			&s.ApplicationID,
			&s.ReferenceNumber,
			&s.EntityType,
			&s.ApplicantName,
			&s.AccountingStatus,
			&s.AccountingReviewed,
			&s.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", rows.Err())
	}
	return summaries, nil
}

// UpdateReviewState sets the review fields in one update. A nil status keeps
// the current accounting_status (mark_reviewed); the reviewed flag only ever
// goes to true.
func (r *PgxApplicationRepository) UpdateReviewState(ctx context.Context, applicationID string, status *string, reviewedBy string) error {
	query := `
        UPDATE applications SET
            accounting_status = COALESCE($2, accounting_status),
            accounting_reviewed = TRUE,
            accounting_reviewed_at = $3,
            accounting_reviewed_by = $4
        WHERE application_id = $1 AND is_submitted = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query, applicationID, status, time.Now(), reviewedBy)
	if err != nil {
		return fmt.Errorf("failed to update review state: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func applicationArgs(app *models.Application) []any {
	return []any{
		app.ApplicationID,
		app.ReferenceNumber,
		app.EntityType,
		app.ApplicantName,
		app.EntityDetails,
		app.PrimaryContact,
		app.HasSecondaryContact,
		app.SecondaryContact,
		app.BeneficialOwners,
		app.Adviser,
		app.InvestmentProfile,
		app.BankDetails,
		app.Consents,
		app.Signatures,
		app.IsSubmitted,
		app.AccountingStatus,
		app.AccountingReviewed,
		app.AccountingReviewedAt,
		app.AccountingReviewedBy,
		app.SessionTokenHash,
		app.CreatedAt,
		app.SubmittedAt,
	}
}
