package get_available_slots

import "errors"

var (
	// ErrScheduleNotConfigured is returned when no working window has been
	// configured by an administrator yet.
	ErrScheduleNotConfigured = errors.New("get_available_slots: working window not configured")

	// ErrInvalidInput is returned for a missing date or unknown booking type.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned when a store read fails.
	ErrInternal = errors.New("get_available_slots: internal error")
)
