package store

import "errors"

var (
	// ErrNotFound is returned when a query matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)
