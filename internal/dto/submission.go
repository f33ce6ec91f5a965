package dto

import (
	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	"github.com/meridianfs/client_onboarding_app/internal/core/validation"
)

// SaveDraftRequest carries the accumulated state of an in-progress
// application. The first save omits DraftID and receives one back together
// with the session token that guards subsequent writes.
type SaveDraftRequest struct {
	DraftID      string `json:"draftID"`
	SessionToken string `json:"sessionToken"`

	EntityType          string                   `json:"entityType" binding:"required"`
	EntityDetails       domain.EntityDetails     `json:"entityDetails"`
	PrimaryContact      domain.Contact           `json:"primaryContact"`
	HasSecondaryContact bool                     `json:"hasSecondaryContact"`
	SecondaryContact    *domain.Contact          `json:"secondaryContact"`
	BeneficialOwners    []domain.BeneficialOwner `json:"beneficialOwners"`
	Adviser             *domain.Adviser          `json:"adviser"`
	InvestmentProfile   domain.InvestmentProfile `json:"investmentProfile"`
	BankDetails         domain.BankDetails       `json:"bankDetails"`
	Consents            domain.Consents          `json:"consents"`
	Signatures          []domain.Signature       `json:"signatures"`
}

// SaveDraftResponse returns the draft identity. SessionToken is only set on
// the creating save.
type SaveDraftResponse struct {
	ApplicationID string `json:"applicationID"`
	SessionToken  string `json:"sessionToken,omitempty"`
}

// SubmitApplicationRequest is the final, full submission. Field-level rules
// are enforced by the validation package, not binding tags.
type SubmitApplicationRequest struct {
	SaveDraftRequest
}

// SubmissionReceipt is returned to the submitter on success.
type SubmissionReceipt struct {
	ApplicationID   string `json:"applicationID"`
	ReferenceNumber string `json:"referenceNumber"`
}

// ValidationFailedResponse is the 422 payload listing field violations.
type ValidationFailedResponse struct {
	Error      string                `json:"error"`
	Violations validation.Violations `json:"violations"`
}

// ToDomainApplication maps the request body onto the domain draft shape.
func (r SaveDraftRequest) ToDomainApplication() domain.Application {
	return domain.Application{
		EntityType:          domain.EntityType(r.EntityType),
		EntityDetails:       r.EntityDetails,
		PrimaryContact:      r.PrimaryContact,
		HasSecondaryContact: r.HasSecondaryContact,
		SecondaryContact:    r.SecondaryContact,
		BeneficialOwners:    r.BeneficialOwners,
		Adviser:             r.Adviser,
		InvestmentProfile:   r.InvestmentProfile,
		BankDetails:         r.BankDetails,
		Consents:            r.Consents,
		Signatures:          r.Signatures,
	}
}
