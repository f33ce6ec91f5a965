// Package validation decides whether a multi-section onboarding draft is
// complete and well-formed for its entity category. It is pure: no I/O, no
// panics, all failure reported as returned violations.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Violation is a single field-scoped validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the full verdict for a draft. A nil/empty slice means valid.
type Violations []Violation

// HasField reports whether any violation names the given field.
func (v Violations) HasField(field string) bool {
	for _, viol := range v {
		if viol.Field == field {
			return true
		}
	}
	return false
}

var (
	abnPattern      = regexp.MustCompile(`^\d{11}$`)
	tfnPattern      = regexp.MustCompile(`^\d{8,9}$`)
	postcodePattern = regexp.MustCompile(`^\d{4}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^(\+?61|0)[2-478]\d{8}$`)
	datePattern     = regexp.MustCompile(`^(0[1-9]|[12]\d|3[01])/(0[1-9]|1[0-2])/(19|20)\d{2}$`)
	bsbPattern      = regexp.MustCompile(`^\d{6}$`)
)

var hundred = decimal.NewFromInt(100)

// ValidateSubmission checks a full draft against the rules for its entity
// category. Required fields must be present; format rules apply to any
// non-empty value.
func ValidateSubmission(app domain.Application) Violations {
	var v Violations

	if !app.EntityType.IsValid() {
		v = append(v, Violation{Field: "entityType", Message: "entity type must be one of individual, joint, company, trust, foundation, smsf"})
		return v
	}

	v = append(v, validateEntityDetails(app.EntityType, app.EntityDetails)...)
	v = append(v, validateContact("primaryContact", app.PrimaryContact)...)

	if app.HasSecondaryContact {
		if app.SecondaryContact == nil {
			v = append(v, Violation{Field: "secondaryContact", Message: "secondary contact details are required"})
		} else {
			v = append(v, validateContact("secondaryContact", *app.SecondaryContact)...)
		}
	}

	v = append(v, validateBeneficialOwners(app.BeneficialOwners)...)

	if app.Adviser != nil {
		v = append(v, validateAdviser(*app.Adviser)...)
	}

	v = append(v, validateBankDetails(app.BankDetails)...)
	v = append(v, validateConsents(app.Consents)...)
	v = append(v, validateSignatures(app.EntityType, app.Signatures)...)

	return v
}

func validateEntityDetails(entityType domain.EntityType, d domain.EntityDetails) Violations {
	var v Violations

	switch entityType {
	case domain.EntityIndividual:
		v = requireAll(v, map[string]string{
			"entityDetails.givenName":   d.GivenName,
			"entityDetails.familyName":  d.FamilyName,
			"entityDetails.dateOfBirth": d.DateOfBirth,
		})
	case domain.EntityJoint:
		v = requireAll(v, map[string]string{
			"entityDetails.givenName":         d.GivenName,
			"entityDetails.familyName":        d.FamilyName,
			"entityDetails.dateOfBirth":       d.DateOfBirth,
			"entityDetails.secondGivenName":   d.SecondGivenName,
			"entityDetails.secondFamilyName":  d.SecondFamilyName,
			"entityDetails.secondDateOfBirth": d.SecondDateOfBirth,
		})
	case domain.EntityCompany:
		v = requireAll(v, map[string]string{
			"entityDetails.companyName": d.CompanyName,
			"entityDetails.acn":         d.ACN,
		})
	case domain.EntityTrust, domain.EntityFoundation, domain.EntitySMSF:
		v = requireAll(v, map[string]string{
			"entityDetails.trustName": d.TrustName,
		})
		v = append(v, validateTrustee(d.Trustee)...)
	}

	if d.ABN != "" && !abnPattern.MatchString(d.ABN) {
		v = append(v, Violation{Field: "entityDetails.abn", Message: "ABN must be exactly 11 digits"})
	}
	if d.TFN != "" && !tfnPattern.MatchString(stripSpaces(d.TFN)) {
		v = append(v, Violation{Field: "entityDetails.tfn", Message: "TFN must be 8 or 9 digits"})
	}
	if d.DateOfBirth != "" && !datePattern.MatchString(d.DateOfBirth) {
		v = append(v, Violation{Field: "entityDetails.dateOfBirth", Message: "date of birth must be DD/MM/YYYY"})
	}
	if d.SecondDateOfBirth != "" && !datePattern.MatchString(d.SecondDateOfBirth) {
		v = append(v, Violation{Field: "entityDetails.secondDateOfBirth", Message: "date of birth must be DD/MM/YYYY"})
	}

	return v
}

// validateTrustee enforces the trustee tagged union: the variant matching the
// declared type must be present and complete.
func validateTrustee(t *domain.Trustee) Violations {
	var v Violations
	if t == nil {
		return append(v, Violation{Field: "entityDetails.trustee", Message: "trustee details are required for this entity type"})
	}

	switch t.Type {
	case domain.TrusteeIndividual:
		if t.Individual == nil {
			return append(v, Violation{Field: "entityDetails.trustee.individual", Message: "individual trustee details are required"})
		}
		v = requireAll(v, map[string]string{
			"entityDetails.trustee.individual.givenName":  t.Individual.GivenName,
			"entityDetails.trustee.individual.familyName": t.Individual.FamilyName,
		})
	case domain.TrusteeJoint:
		if t.Joint == nil {
			return append(v, Violation{Field: "entityDetails.trustee.joint", Message: "joint trustee details are required"})
		}
		v = requireAll(v, map[string]string{
			"entityDetails.trustee.joint.firstTrusteeName":  t.Joint.FirstTrusteeName,
			"entityDetails.trustee.joint.secondTrusteeName": t.Joint.SecondTrusteeName,
		})
	case domain.TrusteeCorporate:
		if t.Corporate == nil {
			return append(v, Violation{Field: "entityDetails.trustee.corporate", Message: "corporate trustee details are required"})
		}
		v = requireAll(v, map[string]string{
			"entityDetails.trustee.corporate.companyName":   t.Corporate.CompanyName,
			"entityDetails.trustee.corporate.companyNumber": t.Corporate.CompanyNumber,
		})
	default:
		v = append(v, Violation{Field: "entityDetails.trustee.type", Message: "trustee type must be one of individual, joint, corporate"})
	}

	return v
}

func validateContact(prefix string, c domain.Contact) Violations {
	var v Violations
	v = requireAll(v, map[string]string{
		prefix + ".givenName":    c.GivenName,
		prefix + ".familyName":   c.FamilyName,
		prefix + ".email":        c.Email,
		prefix + ".phone":        c.Phone,
		prefix + ".addressLine1": c.AddressLine1,
		prefix + ".suburb":       c.Suburb,
		prefix + ".state":        c.State,
		prefix + ".postcode":     c.Postcode,
	})

	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		v = append(v, Violation{Field: prefix + ".email", Message: "email address is not valid"})
	}
	if c.Phone != "" && !phonePattern.MatchString(stripSpaces(c.Phone)) {
		v = append(v, Violation{Field: prefix + ".phone", Message: "phone number is not a valid Australian number"})
	}
	if c.Postcode != "" && !postcodePattern.MatchString(c.Postcode) {
		v = append(v, Violation{Field: prefix + ".postcode", Message: "postcode must be exactly 4 digits"})
	}

	return v
}

func validateBeneficialOwners(owners []domain.BeneficialOwner) Violations {
	var v Violations
	if len(owners) > domain.MaxBeneficialOwners {
		v = append(v, Violation{
			Field:   "beneficialOwners",
			Message: fmt.Sprintf("at most %d beneficial owners are allowed", domain.MaxBeneficialOwners),
		})
	}

	total := decimal.Zero
	for i, owner := range owners {
		if owner.IsEmpty() {
			// Fully-empty rows are legitimate and dropped before persistence.
			continue
		}
		prefix := fmt.Sprintf("beneficialOwners[%d]", i)
		v = requireAll(v, map[string]string{
			prefix + ".givenName":  owner.GivenName,
			prefix + ".familyName": owner.FamilyName,
		})
		if owner.DateOfBirth != "" && !datePattern.MatchString(owner.DateOfBirth) {
			v = append(v, Violation{Field: prefix + ".dateOfBirth", Message: "date of birth must be DD/MM/YYYY"})
		}
		if owner.OwnershipPercent != "" {
			pct, err := decimal.NewFromString(strings.TrimSpace(owner.OwnershipPercent))
			if err != nil || pct.IsNegative() || pct.GreaterThan(hundred) {
				v = append(v, Violation{Field: prefix + ".ownershipPercent", Message: "ownership percentage must be a number between 0 and 100"})
			} else {
				total = total.Add(pct)
			}
		}
	}

	if total.GreaterThan(hundred) {
		v = append(v, Violation{Field: "beneficialOwners", Message: "combined ownership percentage must not exceed 100"})
	}

	return v
}

func validateAdviser(a domain.Adviser) Violations {
	var v Violations
	v = requireAll(v, map[string]string{
		"adviser.name": a.Name,
		"adviser.firm": a.Firm,
	})
	if a.Email != "" && !emailPattern.MatchString(a.Email) {
		v = append(v, Violation{Field: "adviser.email", Message: "email address is not valid"})
	}
	if a.Phone != "" && !phonePattern.MatchString(stripSpaces(a.Phone)) {
		v = append(v, Violation{Field: "adviser.phone", Message: "phone number is not a valid Australian number"})
	}
	return v
}

func validateBankDetails(b domain.BankDetails) Violations {
	var v Violations
	v = requireAll(v, map[string]string{
		"bankDetails.accountName":   b.AccountName,
		"bankDetails.bsb":           b.BSB,
		"bankDetails.accountNumber": b.AccountNumber,
	})
	if b.BSB != "" && !bsbPattern.MatchString(stripSpaces(b.BSB)) {
		v = append(v, Violation{Field: "bankDetails.bsb", Message: "BSB must be exactly 6 digits"})
	}
	return v
}

func validateConsents(c domain.Consents) Violations {
	var v Violations
	if !c.TermsAccepted {
		v = append(v, Violation{Field: "consents.termsAccepted", Message: "terms and conditions must be accepted"})
	}
	if !c.PrivacyAccepted {
		v = append(v, Violation{Field: "consents.privacyAccepted", Message: "privacy policy must be accepted"})
	}
	if !c.FSGReceived {
		v = append(v, Violation{Field: "consents.fsgReceived", Message: "receipt of the financial services guide must be confirmed"})
	}
	if !c.TaxResidencyDeclared {
		v = append(v, Violation{Field: "consents.taxResidencyDeclared", Message: "tax residency must be declared"})
	}
	return v
}

func validateSignatures(entityType domain.EntityType, sigs []domain.Signature) Violations {
	var v Violations
	required := 1
	if entityType.RequiresSecondApplicant() {
		required = 2
	}
	if len(sigs) < required {
		v = append(v, Violation{
			Field:   "signatures",
			Message: fmt.Sprintf("%d signature(s) required for this entity type", required),
		})
	}
	for i, sig := range sigs {
		prefix := fmt.Sprintf("signatures[%d]", i)
		if sig.Name == "" {
			v = append(v, Violation{Field: prefix + ".name", Message: "this field is required"})
		}
		if sig.Date == "" {
			v = append(v, Violation{Field: prefix + ".date", Message: "this field is required"})
		} else if !datePattern.MatchString(sig.Date) {
			v = append(v, Violation{Field: prefix + ".date", Message: "date must be DD/MM/YYYY"})
		}
	}
	return v
}

// requireAll appends a violation for every empty value, keyed by field name.
// Iteration order is not stable; callers compare by field, not position.
func requireAll(v Violations, fields map[string]string) Violations {
	for field, value := range fields {
		if strings.TrimSpace(value) == "" {
			v = append(v, Violation{Field: field, Message: "this field is required"})
		}
	}
	return v
}

func stripSpaces(s string) string {
	return strings.NewReplacer(" ", "", "\t", "").Replace(s)
}
