package domain

import "time"

// AccountingNote is an append-only free-text note attached to an application
// by a reviewer. Notes are never edited or deleted.
type AccountingNote struct {
	NoteID        string    `json:"noteID"`
	ApplicationID string    `json:"applicationID"`
	Note          string    `json:"note"`
	CreatedBy     string    `json:"createdBy"` // reviewer user ID
	CreatedAt     time.Time `json:"createdAt"`
}
