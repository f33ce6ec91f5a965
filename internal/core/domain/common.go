package domain

import "time"

// AuditFields holds standard row timestamps for administrative entities
// (reviewer users, API keys). Application lifecycle timestamps are modelled
// explicitly on Application instead.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
