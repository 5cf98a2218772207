package domain

import "time"

// AuditEntry is an immutable record of an administrative action. Entries are
// append-only: nothing in the service mutates or deletes them.
type AuditEntry struct {
	ID         string
	AdminEmail string
	Action     string
	TargetUser string
	Details    string
	Timestamp  time.Time
}
