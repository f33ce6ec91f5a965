package dto

import (
	"time"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	"github.com/meridianfs/client_onboarding_app/internal/models"
)

// ApplicationSummaryResponse is one row of the review list: non-sensitive
// summary fields only.
type ApplicationSummaryResponse struct {
	ApplicationID      string     `json:"applicationID"`
	ReferenceNumber    string     `json:"referenceNumber"`
	EntityType         string     `json:"entityType"`
	ApplicantName      string     `json:"applicantName"`
	AccountingStatus   string     `json:"accountingStatus"`
	AccountingReviewed bool       `json:"accountingReviewed"`
	SubmittedAt        *time.Time `json:"submittedAt,omitempty"`
}

// ListApplicationsResponse wraps the review list.
type ListApplicationsResponse struct {
	Applications []ApplicationSummaryResponse `json:"applications"`
}

// NoteResponse is one accounting note.
type NoteResponse struct {
	NoteID    string    `json:"noteID"`
	Note      string    `json:"note"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// ApplicationDetailResponse is the full decrypted view plus notes. Individual
// protected fields that fail to decrypt carry an inline placeholder instead of
// failing the whole response.
type ApplicationDetailResponse struct {
	Application domain.Application `json:"application"`
	Notes       []NoteResponse     `json:"notes"`
}

// ReviewActionRequest selects one action from the closed review action set,
// with the action-specific payload fields.
type ReviewActionRequest struct {
	Action string `json:"action" binding:"required"`
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}

// ReviewActionResponse reports the outcome of a review action.
type ReviewActionResponse struct {
	ApplicationID    string `json:"applicationID"`
	Action           string `json:"action"`
	AccountingStatus string `json:"accountingStatus,omitempty"`
}

// AccessLogEntryResponse is one audit trail row.
type AccessLogEntryResponse struct {
	Subject   string    `json:"subject"`
	ActorID   string    `json:"actorID"`
	Action    string    `json:"action"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuditTrailResponse wraps the audit trail for one application.
type AuditTrailResponse struct {
	Entries []AccessLogEntryResponse `json:"entries"`
}

// ToApplicationSummaryResponse converts a persisted summary row.
func ToApplicationSummaryResponse(s models.ApplicationSummary) ApplicationSummaryResponse {
	return ApplicationSummaryResponse{
		ApplicationID:      s.ApplicationID,
		ReferenceNumber:    s.ReferenceNumber,
		EntityType:         s.EntityType,
		ApplicantName:      s.ApplicantName,
		AccountingStatus:   s.AccountingStatus,
		AccountingReviewed: s.AccountingReviewed,
		SubmittedAt:        s.SubmittedAt,
	}
}

// ToNoteResponse converts a domain note.
func ToNoteResponse(n domain.AccountingNote) NoteResponse {
	return NoteResponse{
		NoteID:    n.NoteID,
		Note:      n.Note,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
	}
}

// ToAccessLogEntryResponse converts a domain audit entry.
func ToAccessLogEntryResponse(e domain.AccessLogEntry) AccessLogEntryResponse {
	return AccessLogEntryResponse{
		Subject:   e.Subject,
		ActorID:   e.ActorID,
		Action:    e.Action,
		IP:        e.IP,
		UserAgent: e.UserAgent,
		CreatedAt: e.CreatedAt,
	}
}
