package models

import "time"

// AuditFields holds the audit timestamp columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}
