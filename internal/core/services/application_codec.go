package services

import (
	"fmt"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	"github.com/meridianfs/client_onboarding_app/internal/models"
	"github.com/meridianfs/client_onboarding_app/internal/platform/fieldcrypt"
)

// DecryptPlaceholder is substituted for a protected field that fails to
// decrypt, so one corrupted field never blocks rendering the rest of the
// record.
const DecryptPlaceholder = "[decryption error]"

// ApplicationCodec maps between the domain application (protected fields in
// plain form) and the persisted record (protected fields encrypted). Exactly
// three fields are protected: TFN, BSB and account number.
type ApplicationCodec struct {
	cipher *fieldcrypt.Cipher
}

// NewApplicationCodec creates a codec over the process-wide field cipher.
func NewApplicationCodec(cipher *fieldcrypt.Cipher) *ApplicationCodec {
	return &ApplicationCodec{cipher: cipher}
}

// ToRecord encrypts the protected fields and drops fully-empty beneficial
// owner rows. System fields (id, reference number, timestamps, lifecycle
// flags) are left to the caller, which assigns them exactly once.
func (c *ApplicationCodec) ToRecord(app *domain.Application) (*models.Application, error) {
	rec := &models.Application{
		EntityType: string(app.EntityType),
		EntityDetails: models.EntityDetailsRecord{
			GivenName:          app.EntityDetails.GivenName,
			MiddleName:         app.EntityDetails.MiddleName,
			FamilyName:         app.EntityDetails.FamilyName,
			DateOfBirth:        app.EntityDetails.DateOfBirth,
			SecondGivenName:    app.EntityDetails.SecondGivenName,
			SecondFamilyName:   app.EntityDetails.SecondFamilyName,
			SecondDateOfBirth:  app.EntityDetails.SecondDateOfBirth,
			CompanyName:        app.EntityDetails.CompanyName,
			ACN:                app.EntityDetails.ACN,
			TrustName:          app.EntityDetails.TrustName,
			ABN:                app.EntityDetails.ABN,
			CountryOfResidence: app.EntityDetails.CountryOfResidence,
			Trustee:            app.EntityDetails.Trustee,
		},
		PrimaryContact:      app.PrimaryContact,
		HasSecondaryContact: app.HasSecondaryContact,
		SecondaryContact:    app.SecondaryContact,
		Adviser:             app.Adviser,
		InvestmentProfile:   app.InvestmentProfile,
		BankDetails: models.BankDetailsRecord{
			AccountName: app.BankDetails.AccountName,
			BankName:    app.BankDetails.BankName,
		},
		Consents:   app.Consents,
		Signatures: app.Signatures,
	}

	// Empty owner rows are valid input but are never stored.
	for _, owner := range app.BeneficialOwners {
		if owner.IsEmpty() {
			continue
		}
		rec.BeneficialOwners = append(rec.BeneficialOwners, owner)
	}

	if app.EntityDetails.TFN != "" {
		enc, err := c.cipher.Encrypt(app.EntityDetails.TFN)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt TFN: %w", err)
		}
		rec.EntityDetails.TFN = enc
	}
	if app.BankDetails.BSB != "" {
		enc, err := c.cipher.Encrypt(app.BankDetails.BSB)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt BSB: %w", err)
		}
		rec.BankDetails.BSB = enc
	}
	if app.BankDetails.AccountNumber != "" {
		enc, err := c.cipher.Encrypt(app.BankDetails.AccountNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt account number: %w", err)
		}
		rec.BankDetails.AccountNumber = enc
	}

	return rec, nil
}

// FromRecord decrypts the protected fields for an authorised reader. A field
// that fails to decrypt comes back as DecryptPlaceholder; the names of failed
// fields are returned so the caller can log them.
func (c *ApplicationCodec) FromRecord(rec *models.Application) (*domain.Application, []string) {
	app := &domain.Application{
		ID:              rec.ApplicationID,
		ReferenceNumber: rec.ReferenceNumber,
		EntityType:      domain.EntityType(rec.EntityType),
		EntityDetails: domain.EntityDetails{
			GivenName:          rec.EntityDetails.GivenName,
			MiddleName:         rec.EntityDetails.MiddleName,
			FamilyName:         rec.EntityDetails.FamilyName,
			DateOfBirth:        rec.EntityDetails.DateOfBirth,
			SecondGivenName:    rec.EntityDetails.SecondGivenName,
			SecondFamilyName:   rec.EntityDetails.SecondFamilyName,
			SecondDateOfBirth:  rec.EntityDetails.SecondDateOfBirth,
			CompanyName:        rec.EntityDetails.CompanyName,
			ACN:                rec.EntityDetails.ACN,
			TrustName:          rec.EntityDetails.TrustName,
			ABN:                rec.EntityDetails.ABN,
			CountryOfResidence: rec.EntityDetails.CountryOfResidence,
			Trustee:            rec.EntityDetails.Trustee,
		},
		PrimaryContact:      rec.PrimaryContact,
		HasSecondaryContact: rec.HasSecondaryContact,
		SecondaryContact:    rec.SecondaryContact,
		BeneficialOwners:    rec.BeneficialOwners,
		Adviser:             rec.Adviser,
		InvestmentProfile:   rec.InvestmentProfile,
		BankDetails: domain.BankDetails{
			AccountName: rec.BankDetails.AccountName,
			BankName:    rec.BankDetails.BankName,
		},
		Consents:             rec.Consents,
		Signatures:           rec.Signatures,
		IsSubmitted:          rec.IsSubmitted,
		AccountingStatus:     rec.AccountingStatus,
		AccountingReviewed:   rec.AccountingReviewed,
		AccountingReviewedAt: rec.AccountingReviewedAt,
		CreatedAt:            rec.CreatedAt,
		SubmittedAt:          rec.SubmittedAt,
	}
	if rec.AccountingReviewedBy != nil {
		app.AccountingReviewedBy = *rec.AccountingReviewedBy
	}

	var failed []string
	app.EntityDetails.TFN, failed = c.decryptField(rec.EntityDetails.TFN, "entityDetails.tfn", failed)
	app.BankDetails.BSB, failed = c.decryptField(rec.BankDetails.BSB, "bankDetails.bsb", failed)
	app.BankDetails.AccountNumber, failed = c.decryptField(rec.BankDetails.AccountNumber, "bankDetails.accountNumber", failed)

	return app, failed
}

func (c *ApplicationCodec) decryptField(field fieldcrypt.EncryptedField, name string, failed []string) (string, []string) {
	if field.IsZero() {
		return "", failed
	}
	plaintext, err := c.cipher.Decrypt(field)
	if err != nil {
		return DecryptPlaceholder, append(failed, name)
	}
	return plaintext, failed
}

// ApplicantDisplayName derives the summary display name for a draft by entity
// category.
func ApplicantDisplayName(app *domain.Application) string {
	switch app.EntityType {
	case domain.EntityCompany:
		return app.EntityDetails.CompanyName
	case domain.EntityTrust, domain.EntityFoundation, domain.EntitySMSF:
		return app.EntityDetails.TrustName
	default:
		name := app.EntityDetails.GivenName + " " + app.EntityDetails.FamilyName
		if app.EntityType == domain.EntityJoint && app.EntityDetails.SecondGivenName != "" {
			name += " & " + app.EntityDetails.SecondGivenName + " " + app.EntityDetails.SecondFamilyName
		}
		return name
	}
}
