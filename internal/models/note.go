package models

import "time"

// AccountingNote is an append-only reviewer note row.
type AccountingNote struct {
	NoteID        string    `json:"noteID" db:"note_id"`
	ApplicationID string    `json:"applicationID" db:"application_id"`
	Note          string    `json:"note" db:"note"`
	CreatedBy     string    `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
