package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	undefinedTable  = "42P01"
	uniqueViolation = "23505"
)

// IsUndefinedTable reports a missing relation, e.g. a migration that was never applied.
func IsUndefinedTable(err error) bool {
	return hasCode(err, undefinedTable)
}

func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
