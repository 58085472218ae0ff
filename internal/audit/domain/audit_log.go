package domain

import "time"

// AuditLog is one recorded enrollment or verification event.
type AuditLog struct {
	ID         string
	Action     string
	IdentityID string
	// Metadata is a small JSON blob with action-specific details
	// (e.g. match outcome). Never contains descriptor data.
	Metadata  string
	CreatedAt time.Time
}
