package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrConflict is returned when a write violates a uniqueness or
	// referential constraint. The database constraint is the final
	// guard against concurrent writers; implementations translate the
	// constraint violation into this error.
	ErrConflict = errors.New("store: conflict")
)
