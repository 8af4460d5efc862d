package persistence

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/bazaar/backend/internal/domain/shared"
)

const (
	// UniqueViolationCode indicates a unique constraint violation
	UniqueViolationCode = "23505"
	// ForeignKeyViolationCode indicates a foreign key violation
	ForeignKeyViolationCode = "23503"
	// CheckViolationCode indicates a check constraint violation
	CheckViolationCode = "23514"
)

// asPgError unwraps a PostgreSQL driver error from err
func asPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// mapError translates driver-level errors into domain errors so callers
// never see GORM or PostgreSQL types. The op name is included for
// context.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, shared.ErrNotFound)
	}
	if pe, ok := asPgError(err); ok {
		switch pe.Code {
		case UniqueViolationCode:
			return &shared.IntegrityError{Constraint: pe.ConstraintName, Op: op, Err: shared.ErrAlreadyExists}
		case ForeignKeyViolationCode, CheckViolationCode:
			return &shared.IntegrityError{Constraint: pe.ConstraintName, Op: op, Err: shared.ErrInvalidState}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
