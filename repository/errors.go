package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a row addressed by id or unique key does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrConstraint is returned when a write violates a check constraint (e.g. negative balance).
	ErrConstraint = errors.New("constraint violation")
)

// Postgres SQLSTATE codes mapped to the sentinels above.
const (
	pqUniqueViolation pq.ErrorCode = "23505"
	pqCheckViolation  pq.ErrorCode = "23514"
)

// translate maps driver errors onto the package sentinels, keeping the cause.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return errors.Join(ErrDuplicate, err)
		case pqCheckViolation:
			return errors.Join(ErrConstraint, err)
		}
	}
	return err
}
