// Package service orchestrates enrollment and 1:1 verification over the
// identity repository and the matcher.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"biometric-core-api/internal/audit"
	"biometric-core-api/internal/identity/domain"
	"biometric-core-api/internal/identity/repository"
)

const instrumentationName = "biometric-core-api/identity"

// AuditLogger records enrollment and verification events. Implementations are
// best-effort and must not fail the audited operation.
type AuditLogger interface {
	LogEvent(ctx context.Context, action, identityID, metadata string)
}

// EnrollInput carries the fields of an enrollment request.
type EnrollInput struct {
	FullName   string
	DocumentID string
	Role       string
	Descriptor domain.Descriptor
}

// EnrollmentService registers new identities: field and descriptor validation,
// duplicate pre-check, then insert. Either a fully validated identity is
// persisted or nothing is.
type EnrollmentService struct {
	repo    repository.Repository
	auditor AuditLogger
	tracer  trace.Tracer
}

// NewEnrollmentService returns an EnrollmentService. auditor may be nil.
func NewEnrollmentService(repo repository.Repository, auditor AuditLogger) *EnrollmentService {
	return &EnrollmentService{
		repo:    repo,
		auditor: auditor,
		tracer:  otel.Tracer(instrumentationName),
	}
}

// Enroll validates the input, rejects duplicate document ids, and persists a
// new identity with an assigned id. The lookup before the insert only gives a
// friendlier error for the common case; the unique constraint in the storage
// layer is what rules out concurrent duplicates.
func (s *EnrollmentService) Enroll(ctx context.Context, in EnrollInput) (*domain.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "identity.enroll")
	defer span.End()

	fullName := strings.TrimSpace(in.FullName)
	documentID := strings.TrimSpace(in.DocumentID)
	role := strings.TrimSpace(in.Role)

	if err := requireField("fullName", fullName); err != nil {
		return nil, err
	}
	if err := requireField("documentId", documentID); err != nil {
		return nil, err
	}
	if err := requireField("role", role); err != nil {
		return nil, err
	}
	if err := domain.ValidateDescriptor(in.Descriptor); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{DocumentID: documentID}
	}

	ident := &domain.Identity{
		ID:         uuid.New().String(),
		FullName:   fullName,
		DocumentID: documentID,
		Role:       role,
		Descriptor: in.Descriptor,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, ident); err != nil {
		return nil, err
	}

	if s.auditor != nil {
		s.auditor.LogEvent(ctx, audit.ActionEnroll, ident.ID, "")
	}
	return ident, nil
}

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &domain.ValidationError{Field: field, Reason: domain.ReasonMissing}
	}
	return nil
}
