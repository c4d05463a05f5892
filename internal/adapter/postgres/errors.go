package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// SQLSTATE codes with a domain meaning.
var sqlStateErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// SQLSTATE codes meaning the server cannot take work right now.
var sqlStateUnavailable = map[string]bool{
	"57P01": true, // admin_shutdown
	"57P03": true, // cannot_connect_now
	"53300": true, // too_many_connections
}

// MapError wraps a query error about one entity, translating pgx and
// PostgreSQL failures into domain errors. Context errors are kept as is.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", entity, id, translate(err))
}

// MapListError is MapError for queries not keyed by a single id.
func MapListError(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, translate(err))
}

func translate(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return domain.NewUnavailableError("database", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sqlStateUnavailable[pgErr.Code] {
			return domain.NewUnavailableError("database", err)
		}
		if mapped, ok := sqlStateErrors[pgErr.Code]; ok {
			return mapped
		}
	}
	return err
}
