package repository

import (
	"context"

	"biometric-core-api/internal/identity/domain"
)

// Repository defines persistence for enrolled identities.
type Repository interface {
	// GetByID returns the identity for id, or nil if not found.
	GetByID(ctx context.Context, id string) (*domain.Identity, error)
	// GetByDocumentID returns the identity with the given document id, or nil if not found.
	GetByDocumentID(ctx context.Context, documentID string) (*domain.Identity, error)
	// Create persists the identity. The identity must have ID set; it is not assigned here.
	// Returns domain.ConflictError if the document id is already taken.
	Create(ctx context.Context, ident *domain.Identity) error
	// ListAll returns all identities in insertion order.
	ListAll(ctx context.Context) ([]*domain.Identity, error)
}
