package repository

import (
	"context"
	"database/sql"

	"biometric-core-api/internal/audit/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an audit repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one audit log entry.
func (r *PostgresRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_logs (id, action, identity_id, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Action, entry.IdentityID, entry.Metadata, entry.CreatedAt)
	return err
}
