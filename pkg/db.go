package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes, https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

func IsUniqueViolationError(err error) bool {
	return hasPgCode(err, pgCodeUniqueViolation)
}

func IsForeignKeyViolationError(err error) bool {
	return hasPgCode(err, pgCodeForeignKeyViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
