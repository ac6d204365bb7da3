package schedule

import "errors"

var (
	// ErrNotConfigured is returned when no working window exists yet.
	ErrNotConfigured = errors.New("schedule.service: working window not configured")

	// ErrInvalidWindow is returned for a window that fails validation.
	ErrInvalidWindow = errors.New("schedule.service: invalid working window")

	// ErrInternal is returned when a storage operation fails.
	ErrInternal = errors.New("schedule.service: internal error")
)
