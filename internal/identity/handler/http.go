// Package handler exposes enrollment, verification, and the user directory
// over HTTP. Wire shapes are separate from the domain entity; descriptors are
// accepted on the way in but never serialized back out.
package handler

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"biometric-core-api/internal/identity/domain"
	"biometric-core-api/internal/identity/matcher"
	"biometric-core-api/internal/identity/repository"
	"biometric-core-api/internal/identity/service"
)

// EnrollRequest mirrors the front end's enrollment payload.
type EnrollRequest struct {
	FullName   string    `json:"fullName"`
	DocumentID string    `json:"documentId"`
	Role       string    `json:"role"`
	Descriptor []float32 `json:"descriptor"`
}

// VerifyRequest is a 1:1 verification claim: userId names the claimed
// identity, descriptor is the probe.
type VerifyRequest struct {
	UserID     string    `json:"userId"`
	Descriptor []float32 `json:"descriptor"`
}

// IdentityResponse is the wire shape for identities. It has no descriptor
// field: embeddings are biometric data and do not leave the store.
type IdentityResponse struct {
	ID         string    `json:"id"`
	FullName   string    `json:"fullName"`
	DocumentID string    `json:"documentId"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// VerifyResponse is the verification outcome.
type VerifyResponse struct {
	IsMatch  bool    `json:"isMatch"`
	Distance float64 `json:"distance"`
}

// Server holds the identity HTTP handlers.
type Server struct {
	enroll    *service.EnrollmentService
	verify    *service.VerificationService
	repo      repository.Repository
	threshold float64
}

// NewServer returns the identity HTTP server. threshold is the configured
// match threshold passed to every verification.
func NewServer(enroll *service.EnrollmentService, verify *service.VerificationService, repo repository.Repository, threshold float64) *Server {
	return &Server{enroll: enroll, verify: verify, repo: repo, threshold: threshold}
}

// Enroll handles POST /api/users/enroll.
func (s *Server) Enroll(c *fiber.Ctx) error {
	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("invalid request body"))
	}
	ident, err := s.enroll.Enroll(c.UserContext(), service.EnrollInput{
		FullName:   req.FullName,
		DocumentID: req.DocumentID,
		Role:       req.Role,
		Descriptor: domain.Descriptor(req.Descriptor),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(identityToResponse(ident))
}

// Verify handles POST /api/users/verify.
func (s *Server) Verify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("invalid request body"))
	}
	res, err := s.verify.Verify(c.UserContext(), req.UserID, domain.Descriptor(req.Descriptor), s.threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(VerifyResponse{IsMatch: res.IsMatch, Distance: res.Distance})
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(c *fiber.Ctx) error {
	idents, err := s.repo.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]IdentityResponse, 0, len(idents))
	for _, ident := range idents {
		out = append(out, identityToResponse(ident))
	}
	return c.JSON(out)
}

func identityToResponse(ident *domain.Identity) IdentityResponse {
	return IdentityResponse{
		ID:         ident.ID,
		FullName:   ident.FullName,
		DocumentID: ident.DocumentID,
		Role:       ident.Role,
		CreatedAt:  ident.CreatedAt,
	}
}

// respondError maps domain errors to HTTP statuses. Infrastructure failures
// return a generic message; validation and conflict failures return the
// precise reason.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *domain.ValidationError
	var conflictErr *domain.ConflictError
	var notFoundErr *domain.NotFoundError
	var dimensionErr *matcher.DimensionMismatchError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(validationErr.Error()))
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(errorBody(conflictErr.Error()))
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(errorBody(notFoundErr.Error()))
	case errors.As(err, &dimensionErr):
		// Validation runs before the matcher, so this is a bug, not bad input.
		log.Printf("identity: dimension mismatch reached the matcher: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody("internal error"))
	default:
		log.Printf("identity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody("internal error"))
	}
}

func errorBody(msg string) fiber.Map {
	return fiber.Map{"error": msg}
}
