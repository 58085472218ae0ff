package service

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"biometric-core-api/internal/audit"
	"biometric-core-api/internal/identity/domain"
	"biometric-core-api/internal/identity/matcher"
	"biometric-core-api/internal/identity/repository"
)

// VerificationService answers 1:1 identity claims: is this probe descriptor
// the claimed identity? It never searches across identities.
type VerificationService struct {
	repo      repository.Repository
	auditor   AuditLogger
	tracer    trace.Tracer
	decisions metric.Int64Counter
}

// NewVerificationService returns a VerificationService. auditor may be nil.
func NewVerificationService(repo repository.Repository, auditor AuditLogger) *VerificationService {
	decisions, err := otel.Meter(instrumentationName).Int64Counter(
		"identity.verify.decisions",
		metric.WithDescription("Verification decisions by match outcome."),
	)
	if err != nil {
		otel.Handle(err)
	}
	return &VerificationService{
		repo:      repo,
		auditor:   auditor,
		tracer:    otel.Tracer(instrumentationName),
		decisions: decisions,
	}
}

// Verify validates the probe, loads the claimed identity, and compares the
// descriptors against threshold. The repository is not queried when the probe
// fails validation.
func (s *VerificationService) Verify(ctx context.Context, claimedID string, probe domain.Descriptor, threshold float64) (matcher.Result, error) {
	ctx, span := s.tracer.Start(ctx, "identity.verify")
	defer span.End()

	if err := domain.ValidateDescriptor(probe); err != nil {
		return matcher.Result{}, err
	}
	if strings.TrimSpace(claimedID) == "" {
		return matcher.Result{}, &domain.ValidationError{Field: "userId", Reason: domain.ReasonMissing}
	}

	ident, err := s.repo.GetByID(ctx, claimedID)
	if err != nil {
		return matcher.Result{}, err
	}
	if ident == nil {
		return matcher.Result{}, &domain.NotFoundError{ID: claimedID}
	}

	res, err := matcher.Compare(probe, ident.Descriptor, threshold)
	if err != nil {
		return matcher.Result{}, err
	}

	if s.decisions != nil {
		s.decisions.Add(ctx, 1, metric.WithAttributes(attribute.Bool("match", res.IsMatch)))
	}
	if s.auditor != nil {
		s.auditor.LogEvent(ctx, audit.ActionVerify, ident.ID, fmt.Sprintf(`{"isMatch":%t}`, res.IsMatch))
	}
	return res, nil
}
