// Package audit records enrollment and verification events. Writes are
// best-effort: an audit failure never fails the operation being audited.
package audit

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"biometric-core-api/internal/audit/domain"
	auditrepo "biometric-core-api/internal/audit/repository"
)

// Audit actions emitted by the identity services.
const (
	ActionEnroll = "identity.enroll"
	ActionVerify = "identity.verify"
)

// Logger persists audit events through the audit repository.
type Logger struct {
	repo auditrepo.Repository
}

// NewLogger returns a Logger that persists to repo. repo may be nil; then
// LogEvent is a no-op.
func NewLogger(repo auditrepo.Repository) *Logger {
	return &Logger{repo: repo}
}

// LogEvent writes one audit log entry. Best-effort: errors are logged and not returned.
func (l *Logger) LogEvent(ctx context.Context, action, identityID, metadata string) {
	if l == nil || l.repo == nil {
		return
	}
	entry := &domain.AuditLog{
		ID:         uuid.New().String(),
		Action:     action,
		IdentityID: identityID,
		Metadata:   metadata,
		CreatedAt:  time.Now().UTC(),
	}
	if err := l.repo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to log event %s: %v", action, err)
	}
}
