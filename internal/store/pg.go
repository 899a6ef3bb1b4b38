package store

import (
	"errors"

	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes that count as rejected input rather than a server
// fault.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
	pgNotNull         = "23502"
)

// mapPgError translates constraint violations into the usecase error
// taxonomy, preserving the original message for diagnostics.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgCheckViolation, pgNotNull:
			return &usecase.InvalidInputError{Message: pgErr.Message}
		}
	}
	return err
}
