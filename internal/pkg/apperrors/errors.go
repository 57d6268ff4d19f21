package apperrors

import "errors"

// Service-level error taxonomy. The HTTP layer maps these onto statuses via
// errors.Is; raw store errors are never surfaced to clients.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
)
