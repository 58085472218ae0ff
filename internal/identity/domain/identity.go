package domain

import "time"

// Identity is an enrolled person and their stored face descriptor.
// ID is assigned at enrollment and never changes; DocumentID is unique
// across all identities, enforced by the storage layer.
type Identity struct {
	ID         string
	FullName   string
	DocumentID string
	Role       string
	Descriptor Descriptor
	CreatedAt  time.Time
}
