// Package apperr defines the sentinel errors shared by the core packages.
// The CLI layer maps them to one-line user-facing messages; core code only
// wraps them with the offending id or path.
package apperr

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidCategory = errors.New("invalid category")
	ErrAlreadyExists   = errors.New("already exists")
)
