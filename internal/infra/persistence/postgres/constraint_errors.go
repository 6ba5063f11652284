package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes of integrity constraint violations.
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
)

// violates reports whether err is the given constraint violation, either as
// translated by gorm or as the raw driver error.
func violates(err error, sqlState string, translated error) bool {
	if err == nil {
		return false
	}

	if translated != nil && errors.Is(err, translated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlState
	}

	return false
}

func isUniqueConstraintViolation(err error) bool {
	return violates(err, sqlStateUnique, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return violates(err, sqlStateForeignKey, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return violates(err, sqlStateCheck, gorm.ErrCheckConstraintViolated)
}

func isNotNullConstraintViolation(err error) bool {
	return violates(err, sqlStateNotNull, nil)
}

// constraintName returns the violated constraint, or "" when err carries none.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
