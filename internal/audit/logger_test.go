package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"biometric-core-api/internal/audit/domain"
)

type memAuditRepo struct {
	mu        sync.Mutex
	entries   []*domain.AuditLog
	createErr error
}

func (r *memAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func TestLogEvent_PersistsEntry(t *testing.T) {
	repo := &memAuditRepo{}
	l := NewLogger(repo)

	l.LogEvent(context.Background(), ActionEnroll, "identity-1", `{"note":"x"}`)

	if len(repo.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(repo.entries))
	}
	e := repo.entries[0]
	if e.ID == "" {
		t.Error("entry must have an id")
	}
	if e.Action != ActionEnroll || e.IdentityID != "identity-1" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("entry must have a timestamp")
	}
}

func TestLogEvent_RepoFailureIsSwallowed(t *testing.T) {
	repo := &memAuditRepo{createErr: errors.New("db down")}
	l := NewLogger(repo)

	// Must not panic or propagate: audit is best-effort.
	l.LogEvent(context.Background(), ActionVerify, "identity-1", "")
}

func TestLogEvent_NilRepoIsNoop(t *testing.T) {
	l := NewLogger(nil)
	l.LogEvent(context.Background(), ActionVerify, "identity-1", "")
}
