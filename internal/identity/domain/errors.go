package domain

import "fmt"

// Validation failure reasons reported by ValidateDescriptor and the enrollment service.
const (
	ReasonMissing     = "missing"
	ReasonWrongLength = "wrong_length"
	ReasonNonFinite   = "non_finite"
)

// ValidationError reports malformed caller input. It is never retried: the
// caller must fix the request.
type ValidationError struct {
	Field    string
	Reason   string
	Expected int
	Actual   int
}

func (e *ValidationError) Error() string {
	if e.Reason == ReasonWrongLength {
		return fmt.Sprintf("%s: %s: expected %d elements, got %d", e.Field, e.Reason, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConflictError reports an enrollment attempt for a document id that is
// already taken. The caller must choose a different document id.
type ConflictError struct {
	DocumentID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("identity with document id %q already exists", e.DocumentID)
}

// NotFoundError reports a claimed identity that is not in the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("identity %q not found", e.ID)
}

// StorageError wraps an infrastructure failure. Enrollment persists nothing on
// failure, so the whole operation is safe to retry. The wrapped error must not
// be surfaced to API callers.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
