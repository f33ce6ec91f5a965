package models

import (
	"time"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	"github.com/meridianfs/client_onboarding_app/internal/platform/fieldcrypt"
)

// Application is the persisted shape of an onboarding application. Section
// payloads are stored as jsonb columns; the three protected scalars (TFN, BSB,
// account number) are stored as EncryptedField objects inside their sections.
type Application struct {
	ApplicationID   string `json:"applicationID" db:"application_id"`
	ReferenceNumber string `json:"referenceNumber" db:"reference_number"`
	EntityType      string `json:"entityType" db:"entity_type"`
	// ApplicantName is a denormalised display name so the review list never
	// has to dig into (or decrypt) the section payloads.
	ApplicantName string `json:"applicantName" db:"applicant_name"`

	EntityDetails       EntityDetailsRecord      `json:"entityDetails" db:"entity_details"`
	PrimaryContact      domain.Contact           `json:"primaryContact" db:"primary_contact"`
	HasSecondaryContact bool                     `json:"hasSecondaryContact" db:"has_secondary_contact"`
	SecondaryContact    *domain.Contact          `json:"secondaryContact,omitempty" db:"secondary_contact"`
	BeneficialOwners    []domain.BeneficialOwner `json:"beneficialOwners" db:"beneficial_owners"`
	Adviser             *domain.Adviser          `json:"adviser,omitempty" db:"adviser"`
	InvestmentProfile   domain.InvestmentProfile `json:"investmentProfile" db:"investment_profile"`
	BankDetails         BankDetailsRecord        `json:"bankDetails" db:"bank_details"`
	Consents            domain.Consents          `json:"consents" db:"consents"`
	Signatures          []domain.Signature       `json:"signatures" db:"signatures"`

	IsSubmitted          bool       `json:"isSubmitted" db:"is_submitted"`
	AccountingStatus     string     `json:"accountingStatus" db:"accounting_status"`
	AccountingReviewed   bool       `json:"accountingReviewed" db:"accounting_reviewed"`
	AccountingReviewedAt *time.Time `json:"accountingReviewedAt,omitempty" db:"accounting_reviewed_at"`
	AccountingReviewedBy *string    `json:"accountingReviewedBy,omitempty" db:"accounting_reviewed_by"`

	// SessionTokenHash guards draft mutation: only the originating session,
	// holding the raw token, may update an unsubmitted application.
	SessionTokenHash string `json:"-" db:"session_token_hash"`

	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty" db:"submitted_at"`
}

// EntityDetailsRecord mirrors domain.EntityDetails with the TFN replaced by
// its encrypted representation.
type EntityDetailsRecord struct {
	GivenName          string                    `json:"givenName"`
	MiddleName         string                    `json:"middleName,omitempty"`
	FamilyName         string                    `json:"familyName"`
	DateOfBirth        string                    `json:"dateOfBirth"`
	SecondGivenName    string                    `json:"secondGivenName,omitempty"`
	SecondFamilyName   string                    `json:"secondFamilyName,omitempty"`
	SecondDateOfBirth  string                    `json:"secondDateOfBirth,omitempty"`
	CompanyName        string                    `json:"companyName,omitempty"`
	ACN                string                    `json:"acn,omitempty"`
	TrustName          string                    `json:"trustName,omitempty"`
	ABN                string                    `json:"abn,omitempty"`
	TFN                fieldcrypt.EncryptedField `json:"tfn,omitempty"`
	CountryOfResidence string                    `json:"countryOfResidence,omitempty"`
	Trustee            *domain.Trustee           `json:"trustee,omitempty"`
}

// BankDetailsRecord mirrors domain.BankDetails with BSB and account number
// replaced by their encrypted representations.
type BankDetailsRecord struct {
	AccountName   string                    `json:"accountName"`
	BankName      string                    `json:"bankName"`
	BSB           fieldcrypt.EncryptedField `json:"bsb"`
	AccountNumber fieldcrypt.EncryptedField `json:"accountNumber"`
}

// ApplicationSummary is the non-sensitive projection used by the review list.
type ApplicationSummary struct {
	ApplicationID      string     `json:"applicationID" db:"application_id"`
	ReferenceNumber    string     `json:"referenceNumber" db:"reference_number"`
	EntityType         string     `json:"entityType" db:"entity_type"`
	ApplicantName      string     `json:"applicantName" db:"applicant_name"`
	AccountingStatus   string     `json:"accountingStatus" db:"accounting_status"`
	AccountingReviewed bool       `json:"accountingReviewed" db:"accounting_reviewed"`
	SubmittedAt        *time.Time `json:"submittedAt,omitempty" db:"submitted_at"`
}
