package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the repositories react to.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// pgErrorCode extracts the SQLSTATE and constraint name from either driver's error type.
func pgErrorCode(err error) (code, constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}

	return "", "", false
}

func isUniqueViolation(err error) (string, bool) {
	code, constraint, ok := pgErrorCode(err)
	if !ok || code != codeUniqueViolation {
		return "", false
	}
	return constraint, true
}

// IsWriteConflict reports whether err is a transient serialization or deadlock
// failure after which the whole transaction can be retried.
func IsWriteConflict(err error) bool {
	code, _, ok := pgErrorCode(err)
	return ok && (code == codeSerializationFailure || code == codeDeadlockDetected)
}
