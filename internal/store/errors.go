package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Storage errors are constraint violations, not application
// exceptions. Callers branch with errors.Is.
var (
	ErrNotFound       = errors.New("record not found")
	ErrForeignKey     = errors.New("referenced row does not exist")
	ErrCheckViolation = errors.New("value rejected by check constraint")
	ErrDuplicate      = errors.New("duplicate row")
)

// postgres SQLSTATE codes for integrity violations
const (
	pgFKViolation     = "23503"
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// translate maps driver-level failures onto the storage sentinels.
// Handles pgconn errors on postgres and the sqlite message forms the
// test rig produces.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgFKViolation:
			return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s", ErrCheckViolation, pgErr.ConstraintName)
		}
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case strings.Contains(msg, "CHECK constraint failed"):
		return fmt.Errorf("%w: %v", ErrCheckViolation, err)
	}
	return err
}
