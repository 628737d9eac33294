package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrNotFound: the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReference: a foreign key points at a non-existent record.
	ErrReference = errors.New("referenced record does not exist")

	// ErrDuplicate: a unique business key already exists.
	ErrDuplicate = errors.New("duplicate record")

	// ErrInvalidValue: caller-supplied data that is well-formed JSON but
	// semantically unusable (bad timestamp, check violation).
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicateEvent: the (shipment, occurred_at, event) triple was
	// already recorded. The stored event is untouched and no side
	// effects are applied; replaying upstream feeds is safe.
	ErrDuplicateEvent = errors.New("event already recorded")
)

// translateError maps Postgres SQLSTATE codes onto the taxonomy so
// callers can catch referential and uniqueness violations distinctly.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", ErrReference, pqErr.Detail)
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
		case "22P02", "23514": // bad enum literal / check violation
			return fmt.Errorf("%w: %s", ErrInvalidValue, pqErr.Message)
		}
	}
	return err
}
