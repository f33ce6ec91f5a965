package domain

import "time"

// SubjectApplicationList is the sentinel subject for audit entries that cover
// the whole application list rather than a single record.
const SubjectApplicationList = "list"

// Audit actions recorded by the review surface. The vocabulary is open (the
// action column is free text) but these are the values the backend emits.
const (
	ActionListApplications   = "list_applications"
	ActionViewApplication    = "view_application"
	ActionViewAuditTrail     = "view_audit_trail"
	ActionApprove            = "approve"
	ActionReject             = "reject"
	ActionUpdateStatus       = "update_status"
	ActionAddNotes           = "add_notes"
	ActionMarkReviewed       = "mark_reviewed"
	ActionResendNotification = "resend_notification"
	ActionSubmitApplication  = "submit_application"
)

// RequestMeta carries best-effort request attribution for the audit trail.
// Missing values are recorded as "unknown" rather than dropped.
type RequestMeta struct {
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
}

// AccessLogEntry is one immutable row of the accounting access trail.
type AccessLogEntry struct {
	EntryID   string    `json:"entryID"`
	Subject   string    `json:"subject"` // application ID or SubjectApplicationList
	ActorID   string    `json:"actorID"`
	Action    string    `json:"action"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}
