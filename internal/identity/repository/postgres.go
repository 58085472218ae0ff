package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pgvector/pgvector-go"

	"biometric-core-api/internal/identity/domain"
)

// uniqueViolation is the Postgres error code for a unique constraint violation.
const uniqueViolation = "23505"

// PostgresRepository persists identities in the identities table. The
// descriptor column is a pgvector vector(128); document_id carries a UNIQUE
// constraint, so duplicate enrollment is rejected atomically even under
// concurrent inserts.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an identity repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the identity for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, full_name, document_id, role, descriptor, created_at
		 FROM identities WHERE id = $1`, id)
	return scanIdentity(row)
}

// GetByDocumentID returns the identity with the given document id, or nil if not found.
func (r *PostgresRepository) GetByDocumentID(ctx context.Context, documentID string) (*domain.Identity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, full_name, document_id, role, descriptor, created_at
		 FROM identities WHERE document_id = $1`, documentID)
	return scanIdentity(row)
}

// Create persists the identity. A unique violation on document_id maps to
// domain.ConflictError; any other failure maps to domain.StorageError.
func (r *PostgresRepository) Create(ctx context.Context, ident *domain.Identity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO identities (id, full_name, document_id, role, descriptor, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ident.ID, ident.FullName, ident.DocumentID, ident.Role,
		pgvector.NewVector(ident.Descriptor), ident.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &domain.ConflictError{DocumentID: ident.DocumentID}
		}
		return &domain.StorageError{Err: err}
	}
	return nil
}

// ListAll returns all identities in insertion order.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*domain.Identity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, full_name, document_id, role, descriptor, created_at
		 FROM identities ORDER BY created_at, id`)
	if err != nil {
		return nil, &domain.StorageError{Err: err}
	}
	defer rows.Close()

	var out []*domain.Identity
	for rows.Next() {
		ident, err := scanIdentity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ident)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Err: err}
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdentity(row rowScanner) (*domain.Identity, error) {
	var ident domain.Identity
	var vec pgvector.Vector
	err := row.Scan(&ident.ID, &ident.FullName, &ident.DocumentID, &ident.Role, &vec, &ident.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.StorageError{Err: err}
	}
	ident.Descriptor = domain.Descriptor(vec.Slice())
	return &ident, nil
}
