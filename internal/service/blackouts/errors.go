package blackouts

import "errors"

var (
	// ErrBlackoutNotFound is returned when the blackout does not exist.
	ErrBlackoutNotFound = errors.New("blackouts.service: blackout not found")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("blackouts.service: invalid input data")

	// ErrInternal is returned when a storage operation fails.
	ErrInternal = errors.New("blackouts.service: internal error")
)
