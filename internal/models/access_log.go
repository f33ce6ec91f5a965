package models

import "time"

// AccessLogEntry is one immutable audit row. Rows are only ever inserted.
type AccessLogEntry struct {
	EntryID   string    `json:"entryID" db:"entry_id"`
	Subject   string    `json:"subject" db:"subject"`
	ActorID   string    `json:"actorID" db:"actor_id"`
	Action    string    `json:"action" db:"action"`
	IP        string    `json:"ip" db:"ip"`
	UserAgent string    `json:"userAgent" db:"user_agent"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
