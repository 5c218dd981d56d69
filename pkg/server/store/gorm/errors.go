package gorm

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tenauth/pkg/server/store"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps driver-level failures onto the store error kinds. Both
// pgx (gorm driver) and lib/pq (migrations) errors can show up here.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: %s", store.ErrConflict, pgErr.Message)
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) == pgUniqueViolation || string(pqErr.Code) == pgForeignKeyViolation {
			return fmt.Errorf("%w: %s", store.ErrConflict, pqErr.Message)
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
