package domain

import "time"

// EntityType is the closed set of entity categories an application can be
// lodged for. Validation requirements branch on this value.
type EntityType string

const (
	EntityIndividual EntityType = "individual"
	EntityJoint      EntityType = "joint"
	EntityCompany    EntityType = "company"
	EntityTrust      EntityType = "trust"
	EntityFoundation EntityType = "foundation"
	EntitySMSF       EntityType = "smsf"
)

// IsValid reports whether the entity type is one of the known categories.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityIndividual, EntityJoint, EntityCompany, EntityTrust, EntityFoundation, EntitySMSF:
		return true
	}
	return false
}

// RequiresTrustee reports whether the category carries a trustee sub-record.
func (t EntityType) RequiresTrustee() bool {
	return t == EntityTrust || t == EntityFoundation || t == EntitySMSF
}

// RequiresSecondApplicant reports whether two signatories are expected.
func (t EntityType) RequiresSecondApplicant() bool {
	return t == EntityJoint
}

// TrusteeType discriminates the trustee tagged union.
type TrusteeType string

const (
	TrusteeIndividual TrusteeType = "individual"
	TrusteeJoint      TrusteeType = "joint"
	TrusteeCorporate  TrusteeType = "corporate"
)

// Trustee is a tagged union: exactly one of the variant pointers is expected
// to be populated, matching Type.
type Trustee struct {
	Type       TrusteeType       `json:"type"`
	Individual *IndividualTrustee `json:"individual,omitempty"`
	Joint      *JointTrustee      `json:"joint,omitempty"`
	Corporate  *CorporateTrustee  `json:"corporate,omitempty"`
}

// IndividualTrustee is a single natural-person trustee.
type IndividualTrustee struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}

// JointTrustee carries the full names of two co-trustees.
type JointTrustee struct {
	FirstTrusteeName  string `json:"firstTrusteeName"`
	SecondTrusteeName string `json:"secondTrusteeName"`
}

// CorporateTrustee is a company acting as trustee.
type CorporateTrustee struct {
	CompanyName   string `json:"companyName"`
	CompanyNumber string `json:"companyNumber"`
}

// EntityDetails bundles the category-conditional identity fields of section
// one. TFN is a protected field: encrypted at rest, plain here.
type EntityDetails struct {
	GivenName            string   `json:"givenName"`
	MiddleName           string   `json:"middleName,omitempty"`
	FamilyName           string   `json:"familyName"`
	DateOfBirth          string   `json:"dateOfBirth"` // DD/MM/YYYY
	SecondGivenName      string   `json:"secondGivenName,omitempty"`
	SecondFamilyName     string   `json:"secondFamilyName,omitempty"`
	SecondDateOfBirth    string   `json:"secondDateOfBirth,omitempty"`
	CompanyName          string   `json:"companyName,omitempty"`
	ACN                  string   `json:"acn,omitempty"`
	TrustName            string   `json:"trustName,omitempty"`
	ABN                  string   `json:"abn,omitempty"`
	TFN                  string   `json:"tfn,omitempty"`
	CountryOfResidence   string   `json:"countryOfResidence,omitempty"`
	Trustee              *Trustee `json:"trustee,omitempty"`
}

// Contact is a contact sub-record; used for both primary and secondary contacts.
type Contact struct {
	GivenName    string `json:"givenName"`
	FamilyName   string `json:"familyName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Suburb       string `json:"suburb"`
	State        string `json:"state"`
	Postcode     string `json:"postcode"`
}

// BeneficialOwner is one entry of the variable-length owners section. Each
// entry is independently optional: a fully-empty entry is valid and is dropped
// before persistence.
type BeneficialOwner struct {
	GivenName          string `json:"givenName"`
	FamilyName         string `json:"familyName"`
	DateOfBirth        string `json:"dateOfBirth"`
	ResidentialAddress string `json:"residentialAddress"`
	OwnershipPercent   string `json:"ownershipPercent"`
}

// IsEmpty reports whether every field of the owner entry is blank.
func (o BeneficialOwner) IsEmpty() bool {
	return o.GivenName == "" && o.FamilyName == "" && o.DateOfBirth == "" &&
		o.ResidentialAddress == "" && o.OwnershipPercent == ""
}

// Adviser is the optional adviser sub-record with its three independent
// permission flags.
type Adviser struct {
	Name               string `json:"name"`
	Firm               string `json:"firm"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	CanTransact        bool   `json:"canTransact"`
	CanViewStatements  bool   `json:"canViewStatements"`
	CanUpdateDetails   bool   `json:"canUpdateDetails"`
}

// InvestmentProfile holds the investment-preference enumerations.
type InvestmentProfile struct {
	Objective     string `json:"objective"`
	RiskTolerance string `json:"riskTolerance"`
	Horizon       string `json:"horizon"`
	SourceOfFunds string `json:"sourceOfFunds"`
}

// BankDetails is the payout account. BSB and AccountNumber are protected
// fields: encrypted at rest, plain here.
type BankDetails struct {
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName"`
	BSB           string `json:"bsb"`
	AccountNumber string `json:"accountNumber"`
}

// Consents is the closed set of declarations collected in the final step.
type Consents struct {
	TermsAccepted        bool `json:"termsAccepted"`
	PrivacyAccepted      bool `json:"privacyAccepted"`
	FSGReceived          bool `json:"fsgReceived"`
	TaxResidencyDeclared bool `json:"taxResidencyDeclared"`
}

// Signature is one signature/date pair; joint applications carry two.
type Signature struct {
	Name string `json:"name"`
	Date string `json:"date"` // DD/MM/YYYY
}

// Review statuses. Status is open beyond these (update_status accepts
// operator-chosen values); these are the ones the workflow sets itself.
const (
	StatusPendingReview  = "pending_review"
	StatusApproved       = "approved"
	StatusAdditionalInfo = "additional_info_required"
)

// MaxBeneficialOwners bounds the variable-length owners section.
const MaxBeneficialOwners = 8

// Application is the central entity: a multi-section onboarding submission.
// Before submission it is a draft, mutable only by its originating session;
// after submission only the accounting review fields may change.
type Application struct {
	ID              string     `json:"id"`
	ReferenceNumber string     `json:"referenceNumber"`
	EntityType      EntityType `json:"entityType"`

	EntityDetails       EntityDetails     `json:"entityDetails"`
	PrimaryContact      Contact           `json:"primaryContact"`
	HasSecondaryContact bool              `json:"hasSecondaryContact"`
	SecondaryContact    *Contact          `json:"secondaryContact,omitempty"`
	BeneficialOwners    []BeneficialOwner `json:"beneficialOwners"`
	Adviser             *Adviser          `json:"adviser,omitempty"`
	InvestmentProfile   InvestmentProfile `json:"investmentProfile"`
	BankDetails         BankDetails       `json:"bankDetails"`
	Consents            Consents          `json:"consents"`
	Signatures          []Signature       `json:"signatures"`

	IsSubmitted          bool       `json:"isSubmitted"`
	AccountingStatus     string     `json:"accountingStatus"`
	AccountingReviewed   bool       `json:"accountingReviewed"`
	AccountingReviewedAt *time.Time `json:"accountingReviewedAt,omitempty"`
	AccountingReviewedBy string     `json:"accountingReviewedBy,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}
