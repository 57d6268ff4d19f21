package service

import "featurevote-be/internal/pkg/apperrors"

// Re-exported so services and their tests reference one taxonomy.
var (
	ErrUnauthorized = apperrors.ErrUnauthorized
	ErrForbidden    = apperrors.ErrForbidden
	ErrNotFound     = apperrors.ErrNotFound
	ErrValidation   = apperrors.ErrValidation
	ErrConflict     = apperrors.ErrConflict
)
