package repository

import "errors"

var (
	// ErrNotFound is returned when no transaction matches the given
	// transaction_id.
	ErrNotFound = errors.New("transaction not found")

	// ErrConflict is returned when a create collides with an existing
	// transaction_id. Backed by the unique constraint on the column.
	ErrConflict = errors.New("transaction_id already exists")
)
