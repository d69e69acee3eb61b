package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type pgxRowScanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
